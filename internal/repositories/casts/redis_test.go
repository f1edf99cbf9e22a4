package casts_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
	"github.com/KirkDiggler/metamagic/internal/errors"
	"github.com/KirkDiggler/metamagic/internal/repositories/casts"
	mockcasts "github.com/KirkDiggler/metamagic/internal/repositories/casts/mock"
	"github.com/KirkDiggler/metamagic/internal/uuid"
)

type RedisRepoTestSuite struct {
	suite.Suite
	client       *redis.Client
	mock         redismock.ClientMock
	mockCtrl     *gomock.Controller
	timeProvider *mockcasts.MockTimeProvider
	repo         casts.Repository
	ctx          context.Context
	now          time.Time
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockcasts.NewMockTimeProvider(s.mockCtrl)
	s.repo = casts.NewRedisRepository(&casts.RedisRepoConfig{
		Client:        s.client,
		UUIDGenerator: uuid.NewSequenceGenerator("cast"),
		TimeProvider:  s.timeProvider,
		TTL:           time.Hour,
	})
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisRepoTestSuite) record(id string, created time.Time) *casts.Record {
	return &casts.Record{
		ID:              id,
		ActorID:         "seoni",
		MessageID:       "msg-1",
		SpellName:       "Fireball",
		Applied:         []string{"Dazing Spell", "Persistent Spell"},
		SlotIncrease:    5,
		Persistent:      true,
		Dazing:          true,
		DazingRounds:    3,
		DazingSpellName: "Fireball",
		SaveType:        spellcast.SaveReflex,
		SaveDC:          17,
		CreatedAt:       created,
	}
}

func (s *RedisRepoTestSuite) marshal(r *casts.Record) string {
	data, err := json.Marshal(r)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate_AssignsIDAndTimestamp() {
	s.timeProvider.EXPECT().Now().Return(s.now)

	record := s.record("", time.Time{})
	expected := s.record("cast-1", s.now)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("cast:cast-1", s.marshal(expected), time.Hour).SetVal("OK")
	s.mock.ExpectSAdd("actor:seoni:casts", "cast-1").SetVal(1)
	s.mock.ExpectExpire("actor:seoni:casts", time.Hour).SetVal(true)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.Create(s.ctx, record)
	s.Require().NoError(err)
	s.Equal("cast-1", record.ID)
	s.Equal(s.now, record.CreatedAt)
}

func (s *RedisRepoTestSuite) TestCreate_ExistingID() {
	s.mock.ExpectExists("cast:taken").SetVal(1)

	err := s.repo.Create(s.ctx, s.record("taken", s.now))
	s.True(errors.Is(err, errors.CodeAlreadyExists))
}

func (s *RedisRepoTestSuite) TestCreate_Validation() {
	err := s.repo.Create(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	err = s.repo.Create(s.ctx, &casts.Record{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestCreate_PipelineError() {
	record := s.record("", s.now)
	expected := s.record("cast-1", s.now)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("cast:cast-1", s.marshal(expected), time.Hour).SetErr(stderrors.New("redis down"))

	err := s.repo.Create(s.ctx, record)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestGet() {
	expected := s.record("cast-1", s.now)
	s.mock.ExpectGet("cast:cast-1").SetVal(s.marshal(expected))

	got, err := s.repo.Get(s.ctx, "cast-1")
	s.Require().NoError(err)
	s.Equal(expected, got)

	s.mock.ExpectGet("cast:gone").RedisNil()
	_, err = s.repo.Get(s.ctx, "gone")
	s.True(errors.IsNotFound(err))

	s.mock.ExpectGet("cast:broken").SetVal("{not json")
	_, err = s.repo.Get(s.ctx, "broken")
	s.Error(err)

	_, err = s.repo.Get(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestListByActor_SortsAndPrunesExpired() {
	s.mock.MatchExpectationsInOrder(false)

	older := s.record("cast-a", s.now.Add(-time.Minute))
	newer := s.record("cast-b", s.now)

	s.mock.ExpectSMembers("actor:seoni:casts").SetVal([]string{"cast-b", "cast-a", "cast-x"})
	s.mock.ExpectGet("cast:cast-a").SetVal(s.marshal(older))
	s.mock.ExpectGet("cast:cast-b").SetVal(s.marshal(newer))
	s.mock.ExpectGet("cast:cast-x").RedisNil()
	s.mock.ExpectSRem("actor:seoni:casts", "cast-x").SetVal(1)

	got, err := s.repo.ListByActor(s.ctx, "seoni")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("cast-a", got[0].ID)
	s.Equal("cast-b", got[1].ID)
}

func (s *RedisRepoTestSuite) TestListByActor_GetError() {
	s.mock.ExpectSMembers("actor:seoni:casts").SetVal([]string{"cast-a"})
	s.mock.ExpectGet("cast:cast-a").SetErr(stderrors.New("redis down"))

	_, err := s.repo.ListByActor(s.ctx, "seoni")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectGet("cast:cast-1").SetVal(s.marshal(s.record("cast-1", s.now)))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("cast:cast-1").SetVal(1)
	s.mock.ExpectSRem("actor:seoni:casts", "cast-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Delete(s.ctx, "cast-1"))

	s.mock.ExpectGet("cast:gone").RedisNil()
	s.True(errors.IsNotFound(s.repo.Delete(s.ctx, "gone")))
}
