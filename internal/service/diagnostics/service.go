package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/nuisibook-booking/internal/domain"
	diagnosticRepo "github.com/m04kA/nuisibook-booking/internal/infra/storage/diagnostic"
)

const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Options тайминги ожидания диагностики
type Options struct {
	InitialDelay time.Duration // пауза перед первой проверкой
	PollInterval time.Duration // период повторных проверок
}

// DefaultOptions 15 секунд до первой проверки, затем каждые 5 секунд
func DefaultOptions() Options {
	return Options{InitialDelay: 15 * time.Second, PollInterval: 5 * time.Second}
}

// Service сервис чтения диагностик
type Service struct {
	repo    DiagnosticRepository
	metrics Metrics
	opts    Options
	logger  Logger
}

// NewService создает сервис диагностик
func NewService(repo DiagnosticRepository, metrics Metrics, opts Options, logger Logger) *Service {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultOptions().PollInterval
	}
	if opts.InitialDelay < 0 {
		opts.InitialDelay = 0
	}
	return &Service{repo: repo, metrics: metrics, opts: opts, logger: logger}
}

// Get возвращает диагностику по slug
func (s *Service) Get(ctx context.Context, slug string) (*domain.Diagnostic, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrMissingSlug
	}

	d, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		mapped := mapRepoError(err)
		if errors.Is(mapped, ErrDiagnosticNotFound) {
			s.metrics.IncDiagnosticLookup(outcomeNotFound)
			s.logger.Info("Get: diagnostic slug=%s not found", slug)
		} else {
			s.metrics.IncDiagnosticLookup(outcomeError)
			s.logger.Error("Get: failed to get diagnostic slug=%s: %v", slug, err)
		}
		return nil, mapped
	}

	s.metrics.IncDiagnosticLookup(outcomeFound)
	s.logger.Info("Get: diagnostic slug=%s found", slug)
	return d, nil
}

// IsAvailable сообщает, есть ли диагностика. Любая ошибка считается отсутствием.
func (s *Service) IsAvailable(ctx context.Context, slug string) bool {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return false
	}

	found, err := s.repo.Exists(ctx, slug)
	if err != nil {
		s.logger.Warn("IsAvailable: check failed for slug=%s: %v", slug, err)
		return false
	}
	return found
}

// Wait ждет InitialDelay, затем опрашивает хранилище каждые PollInterval,
// пока диагностика не появится или не истечет ctx.
// Ненастроенное хранилище возвращает ошибку сразу, сбои сети ретраятся.
func (s *Service) Wait(ctx context.Context, slug string) (*domain.Diagnostic, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrMissingSlug
	}

	s.logger.Info("Wait: waiting for diagnostic slug=%s (delay=%s, interval=%s)",
		slug, s.opts.InitialDelay, s.opts.PollInterval)

	delay := time.NewTimer(s.opts.InitialDelay)
	defer delay.Stop()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrNotReady, ctx.Err())
	case <-delay.C:
	}

	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	for {
		found, err := s.repo.Exists(ctx, slug)
		switch {
		case err == nil && found:
			return s.Get(ctx, slug)
		case err != nil && isStoreMisconfigured(err):
			// ожидание не поможет, отвечаем сразу как Get
			s.metrics.IncDiagnosticLookup(outcomeError)
			s.logger.Error("Wait: diagnostic store misconfigured for slug=%s: %v", slug, err)
			return nil, mapRepoError(err)
		case err != nil:
			s.logger.Warn("Wait: check failed for slug=%s, retrying: %v", slug, err)
		}

		select {
		case <-ctx.Done():
			s.logger.Info("Wait: diagnostic slug=%s not ready: %v", slug, ctx.Err())
			return nil, fmt.Errorf("%w: %v", ErrNotReady, ctx.Err())
		case <-ticker.C:
		}
	}
}

func isStoreMisconfigured(err error) bool {
	return errors.Is(err, diagnosticRepo.ErrNotConfigured) ||
		errors.Is(err, diagnosticRepo.ErrTableMissing) ||
		errors.Is(err, diagnosticRepo.ErrPermissionDenied)
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, diagnosticRepo.ErrDiagnosticNotFound):
		return ErrDiagnosticNotFound
	case errors.Is(err, diagnosticRepo.ErrNotConfigured),
		errors.Is(err, diagnosticRepo.ErrPermissionDenied):
		return fmt.Errorf("%w: %v", ErrNotConfigured, err)
	case errors.Is(err, diagnosticRepo.ErrTableMissing):
		return fmt.Errorf("%w: %v", ErrTableMissing, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
