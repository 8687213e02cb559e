// Package services contains server-side business logic. This file implements
// WillService, the will lifecycle engine: it owns the per-will state machine,
// computes expiry deadlines, drives the timer abstraction and enforces the
// exactly-once claim.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lasttx/willkeeper/internal/common"
	"github.com/lasttx/willkeeper/internal/logging"
	"github.com/lasttx/willkeeper/internal/notify"
	"github.com/lasttx/willkeeper/internal/scheduler"
	"github.com/lasttx/willkeeper/internal/server/config"
	"github.com/lasttx/willkeeper/internal/server/models"
	"github.com/lasttx/willkeeper/internal/server/repositories/repomanager"
	"github.com/lasttx/willkeeper/internal/transfer"
	"github.com/sethvargo/go-retry"
)

// Scheduler payloads. The registration key carries the will id; the payload
// selects the action.
const (
	payloadExpire = "expire"
	payloadRemind = "remind"
)

const reminderKeySuffix = ":reminder"

// casAttempts bounds the reload-and-retry loop run by operations that can
// lose a compare-and-set race to the expiry handler.
const casAttempts = 3

// WillService is the lifecycle engine. All collaborator access goes through
// injected interfaces so tests can substitute fakes.
type WillService struct {
	db         *sql.DB
	repos      repomanager.RepositoryManager
	scheduler  scheduler.Scheduler
	dispatcher notify.Dispatcher
	transfer   transfer.Transfer
	logger     logging.Logger

	schedTimeout time.Duration
	reminderLead time.Duration

	// nowFunc is a seam for deterministic time in tests.
	nowFunc func() time.Time
}

// NewWillService constructs the engine with its collaborators.
func NewWillService(db *sql.DB, repos repomanager.RepositoryManager, sched scheduler.Scheduler,
	dispatcher notify.Dispatcher, tr transfer.Transfer, cfg *config.Config, logger logging.Logger) *WillService {
	return &WillService{
		db:           db,
		repos:        repos,
		scheduler:    sched,
		dispatcher:   dispatcher,
		transfer:     tr,
		logger:       logger.With("module", "will_service"),
		schedTimeout: cfg.SchedulerCallTimeout,
		reminderLead: cfg.ReminderLead,
		nowFunc:      time.Now,
	}
}

// Create validates the parameters, persists a new Active will and arms its
// expiry timer. If timer registration fails after the record is persisted,
// the record is rolled back (compensating delete): a persisted but
// unscheduled will would silently never expire.
func (s *WillService) Create(ctx context.Context, owner string, beneficiaries []models.Beneficiary,
	inactivityDuration time.Duration, personalMessage string) (*models.Will, error) {

	if err := models.ValidateWillParams(owner, beneficiaries, inactivityDuration); err != nil {
		return nil, err
	}

	repo := s.repos.Wills(s.db)
	now := s.nowFunc()
	will := &models.Will{
		ID:                 uuid.New().String(),
		Owner:              owner,
		Beneficiaries:      beneficiaries,
		InactivityDuration: inactivityDuration,
		LastActivity:       now,
		PersonalMessage:    personalMessage,
		Status:             models.StatusActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := repo.Create(ctx, will); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}

	if err := s.armTimers(ctx, will); err != nil {
		if delErr := repo.HardDelete(ctx, will.ID); delErr != nil {
			s.logger.Error(ctx, "compensating delete failed, record may be unscheduled",
				"will_id", will.ID, "error", delErr.Error())
		}
		return nil, fmt.Errorf("%w: %v", common.ErrScheduling, err)
	}

	if err := repo.UpdateIfStatus(ctx, models.StatusActive, will); err != nil {
		s.cancelTimers(ctx, will)
		if delErr := repo.HardDelete(ctx, will.ID); delErr != nil {
			s.logger.Error(ctx, "compensating delete failed", "will_id", will.ID, "error", delErr.Error())
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStore, err)
	}

	s.logger.Info(ctx, "will created", "will_id", will.ID, "owner", owner, "deadline", will.Deadline())
	s.dispatcher.Notify(ctx, owner, notify.EventWillCreated, map[string]string{
		"will_id":  will.ID,
		"deadline": will.Deadline().Format(time.RFC3339),
	})
	return will, nil
}

// Pulse resets the inactivity clock of an Active will and re-arms its expiry
// timer at the new deadline.
func (s *WillService) Pulse(ctx context.Context, willID string) error {
	return s.refresh(ctx, willID, nil)
}

// Update changes the will's parameters. Any owner-initiated change is itself
// proof of activity, so the deadline resets exactly as in Pulse.
func (s *WillService) Update(ctx context.Context, willID string, inactivityDuration time.Duration,
	beneficiaries []models.Beneficiary, personalMessage string) error {

	return s.refresh(ctx, willID, func(will *models.Will) error {
		if err := models.ValidateWillParams(will.Owner, beneficiaries, inactivityDuration); err != nil {
			return err
		}
		will.InactivityDuration = inactivityDuration
		will.Beneficiaries = beneficiaries
		will.PersonalMessage = personalMessage
		return nil
	})
}

// refresh implements the shared Pulse/Update flow: load, mutate, reset the
// clock, re-register the timer and commit with a compare-and-set. A lost race
// is retried against fresh state a bounded number of times.
func (s *WillService) refresh(ctx context.Context, willID string, mutate func(*models.Will) error) error {
	repo := s.repos.Wills(s.db)

	backoff := retry.WithMaxRetries(casAttempts-1, retry.NewConstant(10*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		will, err := repo.Get(ctx, willID)
		if err != nil {
			return err
		}
		if will.Status != models.StatusActive {
			return fmt.Errorf("%w: will %s is %s", common.ErrInvalidState, willID, will.Status)
		}

		if mutate != nil {
			if err := mutate(will); err != nil {
				return err
			}
		}

		now := s.nowFunc()
		will.LastActivity = now
		will.UpdatedAt = now

		if err := s.armTimers(ctx, will); err != nil {
			return fmt.Errorf("%w: %v", common.ErrScheduling, err)
		}

		if err := repo.UpdateIfStatus(ctx, models.StatusActive, will); err != nil {
			if errors.Is(err, common.ErrStatusConflict) {
				// The will changed under us (likely expired). Undo the timers
				// we just registered and retry against the fresh record.
				s.cancelTimers(ctx, will)
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
}

// Delete cancels any outstanding timers and marks the will Deleted. A
// resolved inheritance (Claimed) cannot be deleted.
func (s *WillService) Delete(ctx context.Context, willID string) error {
	repo := s.repos.Wills(s.db)

	backoff := retry.WithMaxRetries(casAttempts-1, retry.NewConstant(10*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		will, err := repo.Get(ctx, willID)
		if err != nil {
			return err
		}
		if will.Status == models.StatusClaimed {
			return fmt.Errorf("%w: will %s is already claimed", common.ErrInvalidState, willID)
		}

		// Cancellation is idempotent; a failure is logged but does not stop
		// the delete, because the expiry handler re-validates status before
		// acting on any late fire.
		s.cancelTimers(ctx, will)

		expected := will.Status
		will.Status = models.StatusDeleted
		will.ScheduleToken = ""
		will.ReminderToken = ""
		will.UpdatedAt = s.nowFunc()

		if err := repo.UpdateIfStatus(ctx, expected, will); err != nil {
			if errors.Is(err, common.ErrStatusConflict) {
				return retry.RetryableError(err)
			}
			return err
		}
		s.logger.Info(ctx, "will deleted", "will_id", willID)
		return nil
	})
}

// Claim transitions an Expired will to Claimed on behalf of a beneficiary and
// invokes the asset transfer. The status transition is a single
// compare-and-set: concurrent claims race on it and exactly one wins. The
// transfer runs only after the transition is durably committed, so a transfer
// retry can never double-spend; a transfer failure leaves the will Claimed
// and is surfaced for manual resolution.
func (s *WillService) Claim(ctx context.Context, willID, claimant string) (*transfer.Receipt, error) {
	repo := s.repos.Wills(s.db)

	will, err := repo.Get(ctx, willID)
	if err != nil {
		return nil, err
	}
	if will.Status != models.StatusExpired {
		// A claim that lost the race but loads after the winner's commit must
		// get the same answer as one that lost the compare-and-set below.
		if will.Status == models.StatusClaimed {
			return nil, fmt.Errorf("%w: will %s", common.ErrAlreadyClaimed, willID)
		}
		return nil, fmt.Errorf("%w: will %s is %s", common.ErrInvalidState, willID, will.Status)
	}
	beneficiary := will.FindBeneficiary(claimant)
	if beneficiary == nil {
		return nil, fmt.Errorf("%w: %s has no entitlement on will %s", common.ErrUnauthorized, claimant, willID)
	}

	now := s.nowFunc()
	will.Status = models.StatusClaimed
	will.ClaimedBy = claimant
	will.ClaimedAt = now
	will.ScheduleToken = ""
	will.ReminderToken = ""
	will.UpdatedAt = now

	if err := repo.UpdateIfStatus(ctx, models.StatusExpired, will); err != nil {
		if errors.Is(err, common.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: will %s", common.ErrAlreadyClaimed, willID)
		}
		return nil, err
	}

	receipt, err := s.transfer.Transfer(ctx, willID, claimant, beneficiary.Percentage)
	if err != nil {
		// Deliberately no rollback to Expired: a stuck claim needs operator
		// follow-up, not a silently re-armed expiry.
		s.logger.Error(ctx, "asset transfer failed after claim committed",
			"will_id", willID, "claimant", claimant, "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrTransferFailed, err)
	}

	s.logger.Info(ctx, "inheritance claimed", "will_id", willID, "claimant", claimant,
		"percentage", beneficiary.Percentage, "confirmation", receipt.Confirmation)
	s.notifyAll(ctx, will, notify.EventInheritanceClaimed, map[string]string{
		"will_id":  willID,
		"claimant": claimant,
	})
	return receipt, nil
}

// Get returns a single will.
func (s *WillService) Get(ctx context.Context, willID string) (*models.Will, error) {
	return s.repos.Wills(s.db).Get(ctx, willID)
}

// List returns the owner's wills, newest first.
func (s *WillService) List(ctx context.Context, owner string) ([]*models.Will, error) {
	return s.repos.Wills(s.db).ListByOwner(ctx, owner)
}

// HandleScheduledAction is the scheduler callback. The payload distinguishes
// the expiry action from the expiring-soon reminder.
func (s *WillService) HandleScheduledAction(ctx context.Context, key, payload string) {
	switch payload {
	case payloadRemind:
		s.handleReminder(ctx, strings.TrimSuffix(key, reminderKeySuffix))
	default:
		s.handleExpiry(ctx, key)
	}
}

// handleExpiry re-reads the will and transitions it Active→Expired, but only
// if the deadline has genuinely passed for the *current* record. Timer
// delivery is at-least-once and may be stale (a pulse, update, delete or
// claim may have raced ahead), so every bail-out here is an expected no-op,
// not an error.
func (s *WillService) handleExpiry(ctx context.Context, willID string) {
	repo := s.repos.Wills(s.db)

	will, err := repo.Get(ctx, willID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Debug(ctx, "expiry fired for missing will", "will_id", willID)
			return
		}
		s.logger.Error(ctx, "expiry handler load failed", "will_id", willID, "error", err.Error())
		return
	}
	if will.Status != models.StatusActive {
		s.logger.Debug(ctx, "expiry fired for non-active will", "will_id", willID, "status", string(will.Status))
		return
	}
	now := s.nowFunc()
	if now.Before(will.Deadline()) {
		// Stale registration from before a pulse, or scheduler clock skew.
		s.logger.Debug(ctx, "stale expiry fire", "will_id", willID, "deadline", will.Deadline())
		return
	}

	prevSchedule := will.ScheduleToken
	prevReminder := will.ReminderToken

	will.Status = models.StatusExpired
	will.ScheduleToken = ""
	will.ReminderToken = ""
	will.UpdatedAt = now

	if err := repo.UpdateIfStatus(ctx, models.StatusActive, will); err != nil {
		if errors.Is(err, common.ErrStatusConflict) || errors.Is(err, common.ErrNotFound) {
			s.logger.Debug(ctx, "expiry transition lost race", "will_id", willID)
			return
		}
		s.logger.Error(ctx, "expiry transition failed", "will_id", willID, "error", err.Error())
		return
	}

	// The expiry registration just fired, but an unfired reminder may still
	// be outstanding; a non-Active will must hold no pending registrations.
	s.cancelTimers(ctx, &models.Will{ID: willID, ScheduleToken: prevSchedule, ReminderToken: prevReminder})

	s.logger.Info(ctx, "will expired", "will_id", willID, "deadline", will.Deadline())
	s.notifyAll(ctx, will, notify.EventWillExpired, map[string]string{
		"will_id": willID,
	})
}

// handleReminder notifies the owner that the will is close to expiry. Stale
// fires (the deadline moved out since scheduling) are skipped.
func (s *WillService) handleReminder(ctx context.Context, willID string) {
	will, err := s.repos.Wills(s.db).Get(ctx, willID)
	if err != nil {
		return
	}
	if will.Status != models.StatusActive {
		return
	}
	if s.nowFunc().Before(will.Deadline().Add(-s.reminderLead)) {
		s.logger.Debug(ctx, "stale reminder fire", "will_id", willID)
		return
	}

	s.dispatcher.Notify(ctx, will.Owner, notify.EventWillExpiringSoon, map[string]string{
		"will_id":  willID,
		"deadline": will.Deadline().Format(time.RFC3339),
	})
}

// RestoreSchedules re-arms timers for every Active will. In-process timer
// state does not survive restarts, so the store is the source of truth on
// boot. Wills whose deadline already passed get a registration in the past,
// which fires immediately and expires them through the normal handler path.
func (s *WillService) RestoreSchedules(ctx context.Context) error {
	repo := s.repos.Wills(s.db)

	active, err := repo.ListByStatus(ctx, models.StatusActive)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStore, err)
	}

	restored := 0
	for _, will := range active {
		if err := s.armTimers(ctx, will); err != nil {
			s.logger.Error(ctx, "failed to restore schedule", "will_id", will.ID, "error", err.Error())
			continue
		}
		will.UpdatedAt = s.nowFunc()
		if err := repo.UpdateIfStatus(ctx, models.StatusActive, will); err != nil {
			// The will changed while we were iterating; its own operation owns
			// the timer now.
			s.logger.Debug(ctx, "skipping schedule restore after race", "will_id", will.ID)
			s.cancelTimers(ctx, will)
			continue
		}
		restored++
	}

	s.logger.Info(ctx, "schedules restored", "count", restored)
	return nil
}

// armTimers registers the expiry action (and, when configured and still
// ahead, the expiring-soon reminder) for the will's current deadline,
// replacing any prior registrations under the same keys. Tokens are written
// into the will but not persisted here.
func (s *WillService) armTimers(ctx context.Context, will *models.Will) error {
	deadline := will.Deadline()

	callCtx, cancel := context.WithTimeout(ctx, s.schedTimeout)
	defer cancel()
	token, err := s.scheduler.Schedule(callCtx, will.ID, deadline, payloadExpire)
	if err != nil {
		return err
	}
	will.ScheduleToken = token

	will.ReminderToken = ""
	if s.reminderLead > 0 {
		remindAt := deadline.Add(-s.reminderLead)
		if remindAt.After(s.nowFunc()) {
			remindCtx, cancel := context.WithTimeout(ctx, s.schedTimeout)
			defer cancel()
			rtoken, err := s.scheduler.Schedule(remindCtx, will.ID+reminderKeySuffix, remindAt, payloadRemind)
			if err != nil {
				// The reminder is a courtesy; losing it must not fail the
				// operation that armed the expiry.
				s.logger.Warn(ctx, "reminder scheduling failed", "will_id", will.ID, "error", err.Error())
			} else {
				will.ReminderToken = rtoken
			}
		}
	}
	return nil
}

// cancelTimers cancels the will's outstanding registrations. Cancellation is
// idempotent, so tokens that already fired or were replaced are harmless.
func (s *WillService) cancelTimers(ctx context.Context, will *models.Will) {
	for _, token := range []string{will.ScheduleToken, will.ReminderToken} {
		if token == "" {
			continue
		}
		callCtx, cancel := context.WithTimeout(ctx, s.schedTimeout)
		if err := s.scheduler.Cancel(callCtx, token); err != nil {
			s.logger.Warn(ctx, "timer cancel failed", "will_id", will.ID, "error", err.Error())
		}
		cancel()
	}
}

// notifyAll fans a notification out to the owner and every beneficiary.
// Beneficiaries with an email on file are addressed by it, otherwise by
// wallet address; the dispatcher treats both as opaque recipients.
func (s *WillService) notifyAll(ctx context.Context, will *models.Will, kind notify.EventKind, details map[string]string) {
	s.dispatcher.Notify(ctx, will.Owner, kind, details)
	for _, b := range will.Beneficiaries {
		recipient := b.Address
		if b.Email != "" {
			recipient = b.Email
		}
		s.dispatcher.Notify(ctx, recipient, kind, details)
	}
}
