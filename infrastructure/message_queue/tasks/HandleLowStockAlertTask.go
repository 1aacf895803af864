package queue_tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"stockroom.io/infrastructure/logger"
	mq_types "stockroom.io/infrastructure/message_queue/types"
	"stockroom.io/infrastructure/messaging/emails"
	"github.com/hibiken/asynq"
)

var HandleLowStockAlertTaskName mq_types.Queues = "low_stock_alert"

type LowStockAlertPayload struct {
	ProductName  string
	SKU          string
	Location     string
	Quantity     int64
	ReorderLevel int64
}

func HandleLowStockAlertTask(ctx context.Context, t *asynq.Task) error {
	var payload LowStockAlertPayload
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling low stock alert payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	success := emails.EmailService.SendEmail(os.Getenv("STOCK_ALERT_EMAIL"),
		fmt.Sprintf("Low stock: %s at %s", payload.ProductName, payload.Location),
		"low_stock_alert", payload)
	if !success {
		logger.Error("failed to send low stock alert email", logger.LoggerOptions{
			Key:  "sku",
			Data: payload.SKU,
		})
		return fmt.Errorf("failed to send low stock alert for %s", payload.SKU)
	}
	return nil
}
