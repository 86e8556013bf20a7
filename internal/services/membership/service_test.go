package membership

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hackerclub/internal/model"
	"github.com/mcoot/hackerclub/internal/storage/memory"
	"github.com/mcoot/hackerclub/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	registry *memory.Storage
	service  *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.registry = memory.New()
	s.service = New(s.registry, testutil.NopLogger())
}

// Enroll tests

func (s *ServiceSuite) TestEnrollCreatesMember() {
	member := s.service.Enroll("Ada Lovelace", "Charles")

	s.Equal("Ada Lovelace", member.Name)
	s.Equal([]string{"Charles"}, member.Guests)
}

func (s *ServiceSuite) TestEnrollDoesNotTouchRegistry() {
	_ = s.service.Enroll("Ada Lovelace")
	s.Equal(0, s.registry.Len())
}

func (s *ServiceSuite) TestEnrolledMembersOwnTheirGuests() {
	first := s.service.Enroll("Ada Lovelace")
	second := s.service.Enroll("Grace Hopper")

	first.AddGuest("Ada")

	s.Equal([]string{"Ada"}, first.Guests)
	s.Empty(second.Guests)
}

// EnrollHacker tests

func (s *ServiceSuite) TestEnrollHackerDerivesHandle() {
	member, err := s.service.EnrollHacker("Charles Darwin", "")
	s.Require().NoError(err)

	s.Equal("Charles", member.Handle)
	s.Equal([]string{"Charles"}, s.service.Handles())
}

func (s *ServiceSuite) TestEnrollHackerKeepsExplicitHandle() {
	member, err := s.service.EnrollHacker("Marie Curie", "Marie", "Pierre")
	s.Require().NoError(err)

	s.Equal("Marie", member.Handle)
	s.Equal([]string{"Pierre"}, member.Guests)
	s.True(s.service.HandleTaken("Marie"))
}

func (s *ServiceSuite) TestEnrollHackerRejectsDuplicate() {
	_, err := s.service.EnrollHacker("Marie Curie", "Marie")
	s.Require().NoError(err)

	member, err := s.service.EnrollHacker("Marie Shelley", "Marie")
	s.Nil(member)
	s.ErrorIs(err, model.ErrDuplicateHandle)

	var dupErr *model.DuplicateHandleError
	s.Require().ErrorAs(err, &dupErr)
	s.Equal("Marie", dupErr.Handle)
	s.Equal([]string{"Marie"}, s.service.Handles())
}

func (s *ServiceSuite) TestEnrollHackerRejectsBlankName() {
	_, err := s.service.EnrollHacker(" ", "")
	s.ErrorIs(err, model.ErrNoHandle)
	s.Empty(s.service.Handles())
}

func (s *ServiceSuite) TestHandleTakenUnknown() {
	s.False(s.service.HandleTaken("nobody"))
}

// Logging tests

func (s *ServiceSuite) TestEnrollHackerLogsOutcome() {
	logger, buf := testutil.CaptureLogger()
	svc := New(s.registry, logger)

	_, err := svc.EnrollHacker("Charles Darwin", "")
	s.Require().NoError(err)
	_, err = svc.EnrollHacker("Charles Babbage", "")
	s.Require().Error(err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	s.Require().Len(lines, 2)

	var enrolled, rejected map[string]any
	s.Require().NoError(json.Unmarshal([]byte(lines[0]), &enrolled))
	s.Require().NoError(json.Unmarshal([]byte(lines[1]), &rejected))

	s.Equal("hacker enrolled", enrolled["msg"])
	s.Equal("Charles", enrolled["handle"])
	s.Equal("membership-service", enrolled["component"])

	s.Equal("handle rejected", rejected["msg"])
	s.Equal("WARN", rejected["level"])
	s.Equal("Charles", rejected["handle"])
}

func (s *ServiceSuite) TestEnrollLogsAtDebug() {
	logger, buf := testutil.CaptureLogger()
	svc := New(s.registry, logger)

	_ = svc.Enroll("Ada Lovelace", "Charles", "Mary")

	var record map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &record))
	s.Equal("member enrolled", record["msg"])
	s.Equal("DEBUG", record["level"])
	s.Equal(float64(2), record["guest_count"])
}
