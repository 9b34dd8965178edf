package main

import (
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

// apiError is the error envelope every endpoint uses
type apiError struct {
	Error string `json:"error"`
}

func newClient() *resty.Client {
	c := resty.New().
		SetBaseURL(serverAddr).
		SetTimeout(60 * time.Second).
		SetHeader("Accept", "application/json")
	if authToken != "" {
		c.SetAuthToken(authToken)
	}
	return c
}

// get fetches path and decodes the body into out. With --json the raw body
// is printed instead and out is left untouched.
func get(path string, query map[string]string, out any) {
	resp, err := newClient().R().SetQueryParams(query).Get(path)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	handleResponse(resp, out)
}

func handleResponse(resp *resty.Response, out any) {
	if resp.IsError() {
		var apiErr apiError
		if err := sonic.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error != "" {
			log.Fatalf("Backend returned %s: %s", resp.Status(), apiErr.Error)
		}
		log.Fatalf("Backend returned %s", resp.Status())
	}
	if jsonOutput {
		fmt.Println(string(resp.Body()))
		return
	}
	if out != nil {
		if err := sonic.Unmarshal(resp.Body(), out); err != nil {
			log.Fatalf("Failed to decode response: %v", err)
		}
	}
}
