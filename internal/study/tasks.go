package study

import (
	"context"
	"errors"
	"fmt"

	"studyio.com/narrator/internal/policy"
	"studyio.com/narrator/models"
)

// HandleTask runs a queued task. Classified failures become error replies; any other
// error is returned so the transport can requeue the task.
func (s *Service) HandleTask(ctx context.Context, task models.StudyTask) (*models.StudyTaskReply, error) {
	var err error
	reply := &models.StudyTaskReply{}

	switch task.Kind {
	case models.TaskGenerate:
		if task.Request == nil {
			err = fmt.Errorf("%w: generate task without request", models.ErrInvalidRequest)
			break
		}
		var result *Result
		result, err = s.Generate(ctx, task.AccountId, task.Request)
		if err == nil {
			reply.Session = result.Session
			reply.Cached = result.Cached
		}
	case models.TaskPlay:
		var playback *models.Playback
		playback, err = s.Play(ctx, task.AccountId, task.SessionId)
		if err == nil {
			reply.Audio = playback.Audio
			reply.Marks = playback.Marks
		}
	default:
		err = fmt.Errorf("%w: unknown task kind %q", models.ErrInvalidRequest, task.Kind)
	}

	if err == nil {
		return reply, nil
	}

	kind := models.ErrorKind(err)
	if kind == "" {
		return nil, err
	}
	return ErrorReply(err), nil
}

// ErrorReply renders a classified error for the client.
func ErrorReply(err error) *models.StudyTaskReply {
	message := err.Error()
	var quotaErr *models.QuotaError
	if errors.As(err, &quotaErr) {
		message = policy.DescribeLimit(quotaErr)
	}
	return &models.StudyTaskReply{
		ErrorKind: models.ErrorKind(err),
		Message:   message,
	}
}
