package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jumaleo/sokoni-api/models"
)

// NotifyOrderCreated posts a summary of a committed order to the configured
// fulfilment webhook. A missing ORDER_WEBHOOK_URL disables the call.
func NotifyOrderCreated(order *models.Order) error {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(map[string]any{
			"order_id":    order.ID,
			"reference":   order.Reference,
			"user_id":     order.UserID,
			"total_price": order.TotalPrice,
			"item_count":  len(order.OrderItems),
		}).
		Post(webhookURL)

	if err != nil {
		return err
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("order webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}
