package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yournews/internal/models/db_models"
	"yournews/internal/models/request_models"
	"yournews/internal/models/response_models"
	"yournews/internal/repositories"
	"yournews/pkg/utils"
)

type ApplicationServiceInterface interface {
	Submit(ctx context.Context, userID uuid.UUID, request request_models.RoleApplicationRequest) (*response_models.ApplicationResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]response_models.ApplicationResponse, error)
	ListAll(ctx context.Context) ([]response_models.ApplicationResponse, error)
	Decide(ctx context.Context, applicationID uuid.UUID, approve bool, publisherID *uuid.UUID) (*response_models.ApplicationResponse, error)
}

// ApplicationService holds the db handle directly: approving an application
// touches the application, the user, both subscription tables and the
// profile tables, and all of it must commit or roll back together.
type ApplicationService struct {
	db              *gorm.DB
	applicationRepo repositories.ApplicationRepository
	notifier        NotifierService
}

func NewApplicationService(
	db *gorm.DB,
	applicationRepo repositories.ApplicationRepository,
	notifier NotifierService,
) ApplicationServiceInterface {
	return &ApplicationService{
		db:              db,
		applicationRepo: applicationRepo,
		notifier:        notifier,
	}
}

func (s *ApplicationService) Submit(ctx context.Context, userID uuid.UUID, request request_models.RoleApplicationRequest) (*response_models.ApplicationResponse, error) {
	appliedRole := db_models.Role(request.AppliedRole)
	switch appliedRole {
	case db_models.RoleJournalist, db_models.RoleEditor, db_models.RolePublisher:
	default:
		return nil, utils.ErrInvalidRole
	}

	var user db_models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	if user.Role != db_models.RoleReader {
		return nil, utils.ErrReadersOnly
	}

	application := &db_models.RoleApplication{
		UserID:      userID,
		AppliedRole: appliedRole,
		Motivation:  strings.TrimSpace(request.Motivation),
		Status:      db_models.ApplicationPending,
	}
	if err := s.applicationRepo.Insert(ctx, application); err != nil {
		if errors.Is(err, utils.ErrPendingApplication) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	resp := toApplicationResponse(application, user.Username)
	return &resp, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, userID uuid.UUID) ([]response_models.ApplicationResponse, error) {
	applications, err := s.applicationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, toApplicationResponse(&applications[i], ""))
	}
	return out, nil
}

func (s *ApplicationService) ListAll(ctx context.Context) ([]response_models.ApplicationResponse, error) {
	applications, err := s.applicationRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, toApplicationResponse(&applications[i], applications[i].User.Username))
	}
	return out, nil
}

// Decide approves or rejects an application. Approval flips the user's role,
// deactivates every subscription they hold as a reader and provisions the
// matching profile, all in one transaction. Emails go out only after commit.
// Deciding an already-decided application the same way is a no-op.
func (s *ApplicationService) Decide(ctx context.Context, applicationID uuid.UUID, approve bool, publisherID *uuid.UUID) (*response_models.ApplicationResponse, error) {
	var application db_models.RoleApplication
	var user db_models.User
	var changed bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&application, "id = ?", applicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrNotFound
			}
			return utils.ErrDatabaseError
		}
		if err := tx.First(&user, "id = ?", application.UserID).Error; err != nil {
			return utils.ErrDatabaseError
		}

		target := db_models.ApplicationRejected
		if approve {
			target = db_models.ApplicationApproved
		}
		if application.Status == target {
			return nil
		}

		application.Status = target
		if err := tx.Model(&db_models.RoleApplication{}).
			Where("id = ?", application.ID).
			Update("status", target).Error; err != nil {
			return utils.ErrDatabaseError
		}
		changed = true

		if !approve {
			return nil
		}

		return s.grantRole(tx, &user, application.AppliedRole, publisherID)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.notifier.NotifyRoleDecision(ctx, &user, application.AppliedRole, approve)
	}

	resp := toApplicationResponse(&application, user.Username)
	return &resp, nil
}

// grantRole runs inside the decision transaction.
func (s *ApplicationService) grantRole(tx *gorm.DB, user *db_models.User, role db_models.Role, publisherID *uuid.UUID) error {
	if err := tx.Model(&db_models.User{}).
		Where("id = ?", user.ID).
		Update("role", role).Error; err != nil {
		return utils.ErrDatabaseError
	}
	user.Role = role

	// The promoted user stops being a reader, so their reader-side
	// subscriptions all go inactive.
	if err := tx.Model(&db_models.JournalistSubscription{}).
		Where("reader_id = ?", user.ID).
		Update("is_active", false).Error; err != nil {
		return utils.ErrDatabaseError
	}
	if err := tx.Model(&db_models.PublisherSubscription{}).
		Where("reader_id = ?", user.ID).
		Update("is_active", false).Error; err != nil {
		return utils.ErrDatabaseError
	}

	switch role {
	case db_models.RolePublisher:
		return s.ensurePublisherProfile(tx, user)
	case db_models.RoleJournalist, db_models.RoleEditor:
		if publisherID == nil {
			// Role granted without a profile; an admin attaches one later.
			log.Printf("role %s granted to %s without a publisher profile", role, user.Username)
			return nil
		}
		return s.ensureStaffProfile(tx, user, role, *publisherID)
	}
	return nil
}

func (s *ApplicationService) ensurePublisherProfile(tx *gorm.DB, user *db_models.User) error {
	var existing db_models.Publisher
	err := tx.First(&existing, "user_id = ?", user.ID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrDatabaseError
	}

	publisher := &db_models.Publisher{
		UserID: user.ID,
		Name:   user.Username + " Publishing",
	}
	if err := tx.Create(publisher).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ApplicationService) ensureStaffProfile(tx *gorm.DB, user *db_models.User, role db_models.Role, publisherID uuid.UUID) error {
	var publisher db_models.Publisher
	if err := tx.First(&publisher, "id = ?", publisherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrNotFound
		}
		return utils.ErrDatabaseError
	}

	if role == db_models.RoleEditor {
		var existing db_models.Editor
		err := tx.First(&existing, "user_id = ?", user.ID).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrDatabaseError
		}
		return wrapDBErr(tx.Create(&db_models.Editor{UserID: user.ID, PublisherID: publisher.ID}).Error)
	}

	var existing db_models.Journalist
	err := tx.First(&existing, "user_id = ?", user.ID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrDatabaseError
	}
	return wrapDBErr(tx.Create(&db_models.Journalist{UserID: user.ID, PublisherID: publisher.ID}).Error)
}

func wrapDBErr(err error) error {
	if err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toApplicationResponse(application *db_models.RoleApplication, username string) response_models.ApplicationResponse {
	return response_models.ApplicationResponse{
		ID:          application.ID.String(),
		Username:    username,
		AppliedRole: string(application.AppliedRole),
		Motivation:  application.Motivation,
		Status:      string(application.Status),
		SubmittedAt: application.CreatedAt,
	}
}
