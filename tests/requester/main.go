package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/orders"

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	payload := map[string]any{
		"user_id":        rand.Intn(100) + 1,
		"total":          fmt.Sprintf("%d.%02d", rand.Intn(500)+1, rand.Intn(100)),
		"payment_method": "card",
		"currency":       "USD",
	}

	body, _ := json.Marshal(payload)
	resp, err := http.Post(baseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("POST", baseURL, "->", resp.Status)
	resp.Body.Close()
}
