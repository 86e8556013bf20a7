package membership

import (
	"errors"
	"log/slog"

	"github.com/mcoot/hackerclub/internal/model"
	"github.com/mcoot/hackerclub/internal/storage"
)

// Service enrolls club members and enforces handle uniqueness
type Service struct {
	registry storage.HandleRegistry
	logger   *slog.Logger
}

// New creates a new membership Service
func New(registry storage.HandleRegistry, logger *slog.Logger) *Service {
	return &Service{
		registry: registry,
		logger:   logger.With(slog.String("component", "membership-service")),
	}
}

// Enroll creates a regular club member
func (s *Service) Enroll(name string, guests ...string) *model.ClubMember {
	member := model.NewClubMember(name, guests...)

	s.logger.Debug("member enrolled",
		slog.String("name", name),
		slog.Int("guest_count", len(member.Guests)),
	)

	return member
}

// EnrollHacker creates a hacker club member, deriving the handle from the
// name when handle is empty. Errors from the model are returned unchanged.
func (s *Service) EnrollHacker(name, handle string, guests ...string) (*model.HackerClubMember, error) {
	member, err := model.NewHackerClubMember(s.registry, name, handle, guests...)
	if err != nil {
		var dupErr *model.DuplicateHandleError
		switch {
		case errors.As(err, &dupErr):
			s.logger.Warn("handle rejected",
				slog.String("name", name),
				slog.String("handle", dupErr.Handle),
			)
		case errors.Is(err, model.ErrNoHandle):
			s.logger.Warn("handle rejected",
				slog.String("name", name),
				slog.String("error", err.Error()),
			)
		default:
			s.logger.Error("failed to claim handle",
				slog.String("name", name),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}

	s.logger.Info("hacker enrolled",
		slog.String("name", member.Name),
		slog.String("handle", member.Handle),
		slog.Int("registered_handles", s.registry.Len()),
	)

	return member, nil
}

// HandleTaken reports whether handle is already registered
func (s *Service) HandleTaken(handle string) bool {
	return s.registry.HasHandle(handle)
}

// Handles returns every registered handle in sorted order
func (s *Service) Handles() []string {
	return s.registry.Handles()
}
