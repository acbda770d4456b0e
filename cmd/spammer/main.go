// Command spammer fires signed sample order webhooks at a running
// notifier instance. Meant for local load checks and for exercising the
// dedup sweep with realistic traffic.
package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync/atomic"
	"time"
)

var firstNames = []string{"Rahul", "Priya", "Amit", "Sneha", "Vikram", "Ananya"}
var lastNames = []string{"Kumar", "Sharma", "Patel", "Singh", "Iyer", "Das"}

func main() {
	var (
		target   = flag.String("target", "http://localhost:8080/webhook/orders/create", "webhook endpoint")
		secret   = flag.String("secret", os.Getenv("SHOPIFY_WEBHOOK_SECRET"), "shared webhook secret")
		count    = flag.Int("count", 100, "number of webhooks to send")
		rate     = flag.Int("rate", 20, "webhooks per second")
		dupEvery = flag.Int("dup-every", 10, "resend a previous order id every N requests (0 disables)")
	)
	flag.Parse()

	if *secret == "" {
		log.Fatal("secret is required (flag -secret or SHOPIFY_WEBHOOK_SECRET)")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	interval := time.Second / time.Duration(*rate)

	var sent, dups, failed atomic.Int64
	started := time.Now()
	lastID := int64(0)

	for i := 0; i < *count; i++ {
		id := time.Now().UnixNano()
		if *dupEvery > 0 && i > 0 && i%*dupEvery == 0 && lastID != 0 {
			id = lastID
		}
		lastID = id

		body, err := json.Marshal(sampleOrder(id))
		if err != nil {
			log.Fatalf("marshal order: %v", err)
		}

		status, err := post(client, *target, *secret, body)
		switch {
		case err != nil:
			failed.Add(1)
			log.Printf("send failed: %v", err)
		case status == "ignored":
			dups.Add(1)
		default:
			sent.Add(1)
		}

		time.Sleep(interval)
	}

	elapsed := time.Since(started)
	fmt.Printf("done: sent=%d duplicates=%d failed=%d in %s (%.1f/s)\n",
		sent.Load(), dups.Load(), failed.Load(), elapsed.Round(time.Millisecond),
		float64(*count)/elapsed.Seconds())
}

func sampleOrder(id int64) map[string]any {
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]
	return map[string]any{
		"id":               id,
		"order_number":     id % 100000,
		"total_price":      fmt.Sprintf("%d.00", 99+rand.Intn(5000)),
		"currency":         "INR",
		"financial_status": "paid",
		"customer": map[string]any{
			"first_name": first,
			"last_name":  last,
			"email":      fmt.Sprintf("%s.%s@example.com", first, last),
		},
		"shipping_address": map[string]any{
			"phone": fmt.Sprintf("98%08d", rand.Intn(100000000)),
		},
		"line_items": []map[string]any{
			{"title": "Attar 12ml", "quantity": 1 + rand.Intn(3)},
		},
	}
}

func post(client *http.Client, target, secret string, body []byte) (string, error) {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Hmac-Sha256", signature)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var ack struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return ack.Status, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return ack.Status, nil
}
