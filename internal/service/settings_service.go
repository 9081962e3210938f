package service

import (
	"context"

	"github.com/Shravansapate/legislate-voice-aid/internal/dto"
	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/logger"
	"github.com/Shravansapate/legislate-voice-aid/internal/repository/preference"
)

type ISettingsService interface {
	GetSpeechKeyStatus(ctx context.Context) (*dto.SpeechKeyStatusResponse, error)
	SetSpeechKey(ctx context.Context, req *dto.SetSpeechKeyRequest) error
	ClearSpeechKey(ctx context.Context) error
}

type settingsService struct {
	keys   *preference.SpeechKeyRepository
	logger logger.ILogger
}

func NewSettingsService(keys *preference.SpeechKeyRepository, log logger.ILogger) ISettingsService {
	return &settingsService{
		keys:   keys,
		logger: log,
	}
}

func (ss *settingsService) GetSpeechKeyStatus(ctx context.Context) (*dto.SpeechKeyStatusResponse, error) {
	_, configured, err := ss.keys.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SpeechKeyStatusResponse{Configured: configured}, nil
}

func (ss *settingsService) SetSpeechKey(ctx context.Context, req *dto.SetSpeechKeyRequest) error {
	if err := ss.keys.Set(ctx, req.ApiKey); err != nil {
		return err
	}
	ss.logger.Info("SettingsService", "Speech credential updated", nil)
	return nil
}

func (ss *settingsService) ClearSpeechKey(ctx context.Context) error {
	if err := ss.keys.Delete(ctx); err != nil {
		return err
	}
	ss.logger.Info("SettingsService", "Speech credential cleared", nil)
	return nil
}
