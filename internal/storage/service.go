// Package storage archives stitched session audio to S3.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/sirupsen/logrus"
	"studyio.com/narrator/models"
	"studyio.com/narrator/repository"
)

type ArchiveService struct {
	accountRepository repository.AccountRepository
	uploader          s3manageriface.UploaderAPI
	bucket            string
	logger            *logrus.Entry
}

func NewArchiveService(aRepo repository.AccountRepository, sess client.ConfigProvider, bucket string) *ArchiveService {
	return NewArchiveServiceWithUploader(aRepo, s3manager.NewUploader(sess), bucket)
}

func NewArchiveServiceWithUploader(aRepo repository.AccountRepository, uploader s3manageriface.UploaderAPI, bucket string) *ArchiveService {
	return &ArchiveService{
		accountRepository: aRepo,
		uploader:          uploader,
		bucket:            bucket,
		logger:            logrus.WithField("component", "archive"),
	}
}

func ObjectKey(sessionId string) string {
	return "sessions/" + sessionId + ".mp3"
}

// ArchiveSession uploads a session's audio and records where it lives.
func (s *ArchiveService) ArchiveSession(ctx context.Context, task models.ArchiveTask) error {
	log := s.logger.WithFields(logrus.Fields{"session_id": task.SessionId, "run_id": task.RunID})

	session, err := s.accountRepository.GetSession(ctx, task.AccountId, task.SessionId)
	if err != nil {
		return err
	}
	if session.AudioURL != "" {
		log.Debug("session already archived")
		return nil
	}
	if len(session.Audio) == 0 {
		return fmt.Errorf("session %s has no audio", session.Id)
	}

	result, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(ObjectKey(session.Id)),
		Body:        bytes.NewReader(session.Audio),
		ContentType: aws.String(models.AudioContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload session %s: %w", session.Id, err)
	}

	if err := s.accountRepository.SetAudioURL(ctx, session.Id, result.Location); err != nil {
		return err
	}
	log.WithField("location", result.Location).Info("session archived")
	return nil
}
