package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"beneficios_saude/internal/domain/entities"
	"beneficios_saude/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReferralNotFound  = errors.New("referral not found")
	ErrInvalidReferralID = errors.New("invalid referral id")
)

type SubmitReferralInput struct {
	EstablishmentName string
	Address           string
	City              string
	State             string
	Phone             string
	Notes             string
}

// IReferralUseCase handles client nominations of new establishments.
// pending -> approved | rejected. Approval adds the establishment to the
// network in the same write.

type IReferralUseCase interface {
	Submit(ctx context.Context, sess entities.Session, in SubmitReferralInput) (entities.Referral, error)
	Approve(ctx context.Context, sess entities.Session, id string) (entities.Referral, error)
	Reject(ctx context.Context, sess entities.Session, id string, reason string) (entities.Referral, error)
	List(ctx context.Context, sess entities.Session, status string) ([]entities.Referral, error)
}

type ReferralUseCase struct {
	repo     interfaces.IReferralRepository
	notifier interfaces.INotificationEmitter
}

var _ IReferralUseCase = (*ReferralUseCase)(nil)

func NewReferralUseCase(repo interfaces.IReferralRepository, notifier interfaces.INotificationEmitter) *ReferralUseCase {
	return &ReferralUseCase{repo: repo, notifier: notifier}
}

func (u *ReferralUseCase) Submit(ctx context.Context, sess entities.Session, in SubmitReferralInput) (entities.Referral, error) {
	log.Printf("[referral][usecase] submit start client_id=%s name=%q", sess.UserID, in.EstablishmentName)
	if !sess.IsClient() || sess.UserID == "" {
		return entities.Referral{}, ErrForbidden
	}
	name := strings.TrimSpace(in.EstablishmentName)
	if name == "" {
		return entities.Referral{}, missingField("establishment_name")
	}

	now := time.Now().UTC()
	r := entities.Referral{
		ID:                uuid.NewString(),
		ClientID:          sess.UserID,
		EstablishmentName: name,
		Address:           strings.TrimSpace(in.Address),
		City:              strings.TrimSpace(in.City),
		State:             strings.ToUpper(strings.TrimSpace(in.State)),
		Phone:             strings.TrimSpace(in.Phone),
		Notes:             strings.TrimSpace(in.Notes),
		Status:            entities.ReferralStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[referral][usecase] create failed client_id=%s err=%v", sess.UserID, err)
		return entities.Referral{}, err
	}
	log.Printf("[referral][usecase] submit success referral_id=%s", created.ID)
	return created, nil
}

func (u *ReferralUseCase) Approve(ctx context.Context, sess entities.Session, id string) (entities.Referral, error) {
	log.Printf("[referral][usecase] approve start referral_id=%s staff_id=%s", id, sess.UserID)
	if !sess.IsStaff() {
		return entities.Referral{}, ErrForbidden
	}
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Referral{}, err
	}
	if current.Status != entities.ReferralStatusPending {
		return entities.Referral{}, invalidTransition("referral", current.ID, string(current.Status), "approve")
	}

	now := time.Now().UTC()
	est := current.ToEstablishment(uuid.NewString(), now)
	approved, err := u.repo.ApproveWithEstablishment(ctx, current.ID, est, now)
	if err != nil {
		log.Printf("[referral][usecase] approve write failed referral_id=%s err=%v", current.ID, err)
		return entities.Referral{}, err
	}
	if approved.ID == "" {
		return entities.Referral{}, fmt.Errorf("%w: referral %s changed concurrently, cannot approve", ErrInvalidTransition, current.ID)
	}

	u.notify(ctx, approved, "Indicação aprovada",
		fmt.Sprintf("%s agora faz parte da rede credenciada.", approved.EstablishmentName), entities.NotificationKindSuccess)
	log.Printf("[referral][usecase] approve success referral_id=%s establishment_id=%s", approved.ID, approved.EstablishmentID)
	return approved, nil
}

func (u *ReferralUseCase) Reject(ctx context.Context, sess entities.Session, id string, reason string) (entities.Referral, error) {
	if !sess.IsStaff() {
		return entities.Referral{}, ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Referral{}, missingField("reason")
	}
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Referral{}, err
	}
	if current.Status != entities.ReferralStatusPending {
		return entities.Referral{}, invalidTransition("referral", current.ID, string(current.Status), "reject")
	}

	now := time.Now().UTC()
	status := entities.ReferralStatusRejected
	updated, err := u.repo.Update(ctx, current.ID, []entities.ReferralStatus{entities.ReferralStatusPending}, entities.ReferralUpdate{
		Status:          &status,
		RejectionReason: &reason,
		ReviewedAt:      &now,
	})
	if err != nil {
		return entities.Referral{}, err
	}
	if updated.ID == "" {
		return entities.Referral{}, fmt.Errorf("%w: referral %s changed concurrently, cannot reject", ErrInvalidTransition, current.ID)
	}

	u.notify(ctx, updated, "Indicação não aprovada",
		fmt.Sprintf("A indicação de %s não foi aprovada. Motivo: %s", updated.EstablishmentName, reason), entities.NotificationKindWarning)
	return updated, nil
}

func (u *ReferralUseCase) List(ctx context.Context, sess entities.Session, status string) ([]entities.Referral, error) {
	status = strings.TrimSpace(status)
	filter := entities.ReferralStatus(status)
	if status != "" && !filter.Valid() {
		return nil, ErrInvalidStatusFilter
	}

	var items []entities.Referral
	switch {
	case sess.IsClient() && sess.UserID != "":
		all, err := u.repo.ListByClientID(ctx, sess.UserID)
		if err != nil {
			return nil, err
		}
		for _, r := range all {
			if status == "" || r.Status == filter {
				items = append(items, r)
			}
		}
	case sess.IsStaff():
		statuses := []entities.ReferralStatus{filter}
		if status == "" {
			statuses = []entities.ReferralStatus{entities.ReferralStatusPending, entities.ReferralStatusApproved, entities.ReferralStatusRejected}
		}
		for _, s := range statuses {
			part, err := u.repo.ListByStatus(ctx, s)
			if err != nil {
				return nil, err
			}
			items = append(items, part...)
		}
	default:
		return nil, ErrInvalidSession
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (u *ReferralUseCase) load(ctx context.Context, id string) (entities.Referral, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Referral{}, ErrInvalidReferralID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Referral{}, err
	}
	if r.ID == "" {
		return entities.Referral{}, ErrReferralNotFound
	}
	return r, nil
}

func (u *ReferralUseCase) notify(ctx context.Context, r entities.Referral, title, message string, kind entities.NotificationKind) {
	if u.notifier == nil {
		return
	}
	u.notifier.Emit(ctx, entities.Notification{
		UserID:  r.ClientID,
		Title:   title,
		Message: message,
		Kind:    kind,
		Link:    "/referrals",
	})
}
