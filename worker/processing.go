package worker

import (
	"encoding/json"
	"errors"
	"fmt"
	"gdtools.org/lemmatizer/metrics"
	"gdtools.org/lemmatizer/pipeline"
	"gdtools.org/lemmatizer/tasks"
	"gdtools.org/lemmatizer/utils"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

// Message is the body of a sequencer delivery. RedisKey names the chunk.
type Message struct {
	WorkType string `json:"work_type"`
	RedisKey string `json:"redis_key"`
	Sender   string `json:"sender"`
	Version  string `json:"version"`
}

type Task struct {
	delivery  *amqp.Delivery
	chunkTask *tasks.ChunkTask
	message   *Message
	redisKey  string
	logger    *zerolog.Logger
}

const (
	outcomeCompleted = "completed"
	outcomeFailed    = "failed"
	outcomeSkipped   = "skipped"
	outcomeRejected  = "rejected"
)

var errPipelineClosed = errors.New("pipeline channel was closed before returning anything")

func (worker *Worker) processMessage(delivery *amqp.Delivery) {
	rejectLogger := worker.logger.With().Str("message_id", delivery.MessageId).Logger()
	task, err := worker.createTask(delivery)
	if err != nil {
		rejectLogger.Err(err).
			Str("body", string(delivery.Body)).
			Msg("Failed to create task for delivery")
		worker.reject(delivery, &rejectLogger)
		return
	}
	outcome, err := worker.processTask(task)
	if err != nil {
		worker.reject(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.pingSequencer(task, *task.message); err != nil {
		task.logger.Err(err).Msg("Got error while sending message to sequencer queue")
		worker.reject(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.acknowledgeDelivery(delivery); err != nil {
		task.logger.Err(err).Msg("Failed to acknowledge delivery")
	}
	metrics.WorkerTasksTotal.WithLabelValues(outcome).Inc()
	task.logger.Info().Str("outcome", outcome).Msg("Finished processing RMQ message")
}

func (worker *Worker) reject(delivery *amqp.Delivery, logger *zerolog.Logger) {
	metrics.WorkerTasksTotal.WithLabelValues(outcomeRejected).Inc()
	worker.rmq.rejectDelivery(delivery, logger)
}

func (worker *Worker) createTask(delivery *amqp.Delivery) (*Task, error) {
	var message Message
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	chunkTask, err := worker.redis.getChunkTask(message.RedisKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunk task for message: %w", err)
	}
	taskLogger := worker.logger.With().Str("tid", message.RedisKey).Logger()
	return &Task{
		delivery:  delivery,
		chunkTask: chunkTask,
		redisKey:  message.RedisKey,
		message:   &message,
		logger:    &taskLogger,
	}, nil
}

// processTask returns an error only when the delivery should go back to the
// queue. A failed pipeline run is recorded on the chunk and is not an error.
func (worker *Worker) processTask(task *Task) (string, error) {
	shouldPerform, err := worker.shouldPerformTask(task)
	if err != nil {
		task.logger.Err(err).Msg("Got error while trying to decide whether to run task")
		return "", err
	}
	if !shouldPerform {
		return outcomeSkipped, nil
	}
	if err = worker.redis.onTaskStarted(task); err != nil {
		task.logger.Err(err).Msg("Failed to update task info")
		return "", fmt.Errorf("failed to update chunk task: %w", err)
	}
	if err = worker.runPipeline(task); err != nil {
		task.logger.Err(err).Msg("Got error while running pipeline")
		if err = worker.redis.onTaskFailedWithError(task, err); err != nil {
			return "", err
		}
		return outcomeFailed, nil
	}
	task.logger.Info().Msg("Saved results, marking task as complete")
	if err = worker.redis.onTaskComplete(task); err != nil {
		task.logger.Err(err).Msg("Got error while trying to mark task as complete")
		return "", err
	}
	return outcomeCompleted, nil
}

func (worker *Worker) runPipeline(task *Task) (err error) {
	defer utils.RecoverWithError(&err)
	task.logger.Info().
		Int("attempt", task.chunkTask.TaskStatuses.Lemmatizer.Attempts).
		Msg("Processing message from RMQ")
	data, err := worker.s3.getProcessedData(task)
	if err != nil {
		task.logger.Err(err).Caller().Msg("Could not fetch CoNLL-U chunk from s3")
		return fmt.Errorf("failed to fetch data from s3: %w", err)
	}
	request := pipeline.Request{
		Tid:  task.redisKey,
		Text: string(data),
	}
	result, ok := <-worker.ppln(request)
	if !ok {
		task.logger.Err(errPipelineClosed).Msg("Pipeline returned no result")
		return errPipelineClosed
	}
	if err = pipeline.ResponseError(result); err != nil {
		task.logger.Err(err).Msg("Pipeline could not process the chunk")
		return err
	}
	task.logger.Info().Msg("Finished pipeline, saving results to s3")
	if err = worker.s3.saveResultsFile(task, result); err != nil {
		task.logger.Err(err).Msg("Got error while trying to save results")
		return err
	}
	return nil
}

func (worker *Worker) shouldPerformTask(task *Task) (bool, error) {
	taskInfo := task.chunkTask.TaskStatuses.Lemmatizer
	taskLogger := task.logger

	if taskInfo.Status.Complete() {
		taskLogger.Info().Msg("Task is already done (the previous ack may have been lost). Sending back to Sequencer.")
		return false, nil
	}
	taskJob, err := worker.redis.getJobTask(task)
	if err != nil {
		taskLogger.Err(err).Msg("Failed to query job task for chunk task")
		return false, err
	}
	if taskJob.UserCanceled {
		taskLogger.Info().Msg("Job was canceled. Sending back to Sequencer.")
		return false, worker.redis.onTaskCancelled(task)
	}
	if taskJob.StopDocumentsOnFailure {
		docTask, err := worker.redis.getDocTask(task)
		if err != nil {
			return false, err
		}
		if docTask == nil {
			return false, errors.New("document task not found")
		}
		if len(docTask.FailedTasks) > 0 {
			failedTask := docTask.FailedTasks[0]
			taskLogger.Info().
				Str("failed_task", failedTask).
				Msg("Document already failed in another worker. Sending back to Sequencer.")
			return false, worker.redis.onTaskCancelled(
				task,
				fmt.Sprintf(
					"Task was marked as %q because the document has failed in the %q worker.",
					tasks.TaskStatusCanceled,
					failedTask,
				),
			)
		}
	}
	if taskInfo.Attempts >= worker.config.TaskMaxRetries {
		taskLogger.Info().Msg("Lemmatizer task has exceeded retries. Sending back to Sequencer.")
		return false, worker.redis.onTaskExceededRetries(task, worker.config.TaskMaxRetries)
	}
	return true, nil
}
