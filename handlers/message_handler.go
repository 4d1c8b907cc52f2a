// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"lyftr-server/store"

	"github.com/labstack/echo/v4"
)

// GetMessagesHandler godoc
// @Summary      List stored messages
// @Description  Returns messages ordered by ts then message_id ascending, with pagination and optional filters.
// @Tags         messages
// @Produce      json
// @Param        limit   query  int     false  "Page size, 1-100"        default(50)
// @Param        offset  query  int     false  "Page offset"             default(0)
// @Param        from    query  string  false  "Exact sender MSISDN match"
// @Param        since   query  string  false  "Inclusive RFC 3339 lower bound on ts"
// @Param        q       query  string  false  "Case-insensitive substring match on text"
// @Success      200 {object} MessageListResponse "Page of messages"
// @Failure      422 {object} ErrorResponse       "Out-of-range or malformed query parameter"
// @Failure      500 {object} ErrorResponse       "Storage failure"
// @Router       /messages [get]
func (h *Handler) GetMessagesHandler(c echo.Context) error {
	logger := c.Logger()

	limit := h.Config.DefaultPageLimit
	if v := c.QueryParam("limit"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i < 1 || i > h.Config.MaxPageLimit {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Detail: "limit must be an integer between 1 and " + strconv.Itoa(h.Config.MaxPageLimit),
			})
		}
		limit = i
	}

	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i < 0 {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Detail: "offset must be a non-negative integer",
			})
		}
		offset = i
	}

	filters := store.ListFilters{
		From:  c.QueryParam("from"),
		Query: c.QueryParam("q"),
	}
	if v := c.QueryParam("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Detail: "since must be an RFC 3339 timestamp",
			})
		}
		filters.Since = &since
	}

	items, total, err := h.Store.List(filters, limit, offset)
	if err != nil {
		logger.Error("Failed to list messages:", err)
		return echo.ErrInternalServerError
	}

	data := make([]MessageDetails, 0, len(items))
	for _, m := range items {
		data = append(data, MessageDetails{
			MessageID: m.MessageID,
			From:      m.FromMSISDN,
			To:        m.ToMSISDN,
			Ts:        m.Ts.UTC(),
			Text:      m.Text,
			CreatedAt: m.CreatedAt.UTC(),
		})
	}

	logger.Debugf("Retrieved %d messages (limit=%d, offset=%d, total=%d)", len(data), limit, offset, total)

	return c.JSON(http.StatusOK, MessageListResponse{
		Data:   data,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}
