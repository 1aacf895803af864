package messagequeue

import (
	"stockroom.io/infrastructure/message_queue/asynq"
	mq_types "stockroom.io/infrastructure/message_queue/types"
)

var TaskQueue mq_types.TaskQueueBroker = &asynq.AsynqBroker{}

func StartQueue() {
	TaskQueue.Start()
}
