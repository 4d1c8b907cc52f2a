// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type payload struct {
	MessageID string  `json:"message_id"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Ts        string  `json:"ts"`
	Text      *string `json:"text,omitempty"`
}

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func main() {
	serverURL := flag.String("url", "http://localhost:8000", "Base URL of the webhook server")
	secret := flag.String("secret", "", "Shared webhook secret used to sign the payload")
	messageID := flag.String("id", "", "Message ID (random UUID when omitted)")
	from := flag.String("from", "+919876543210", "Sender MSISDN in E.164 format")
	to := flag.String("to", "+14155550100", "Recipient MSISDN in E.164 format")
	text := flag.String("text", "Hello from webhookcli", "Message text")
	ts := flag.String("ts", "", "Message timestamp, RFC 3339 with Z suffix (now when omitted)")
	flag.Parse()

	if *secret == "" {
		log.Fatal("-secret is required")
	}

	id := *messageID
	if id == "" {
		id = uuid.New().String()
	}
	stamp := *ts
	if stamp == "" {
		stamp = time.Now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(payload{
		MessageID: id,
		From:      *from,
		To:        *to,
		Ts:        stamp,
		Text:      text,
	})
	if err != nil {
		log.Fatalf("marshal payload: %v", err)
	}

	// The signature must cover the exact bytes sent on the wire.
	req, err := http.NewRequest(http.MethodPost, *serverURL+"/webhook", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", sign(body, *secret))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("send webhook: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}

	fmt.Printf("message_id: %s\n", id)
	fmt.Printf("status: %s\n", resp.Status)
	fmt.Printf("body: %s\n", respBody)
}
