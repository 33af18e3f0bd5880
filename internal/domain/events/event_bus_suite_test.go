package events_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/events"
	mockevents "github.com/KirkDiggler/rpg-arena/internal/domain/events/mock"
	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventBusSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	bus  *events.EventBus
}

func TestEventBusSuite(t *testing.T) {
	suite.Run(t, new(EventBusSuite))
}

func (s *EventBusSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bus = events.NewEventBus()
}

// recorder appends its tag to a shared log when it sees an event
func recorder(priority int, tag string, log *[]string, mu *sync.Mutex) events.EventListener {
	return events.ListenerFunc(priority, func(*events.GameEvent) error {
		mu.Lock()
		defer mu.Unlock()
		*log = append(*log, tag)
		return nil
	})
}

func (s *EventBusSuite) TestSubscribeAndEmit() {
	listener := mockevents.NewMockEventListener(s.ctrl)
	event := events.NewGameEvent(events.AttackRolled, nil).WithContext(events.ContextRoll, 42)

	listener.EXPECT().Priority().Return(10).AnyTimes()
	listener.EXPECT().HandleEvent(event).Return(nil)

	s.bus.Subscribe(events.AttackRolled, listener)

	s.NoError(s.bus.Emit(event))
}

func (s *EventBusSuite) TestUnsubscribe() {
	var got []string
	mu := &sync.Mutex{}
	listener := recorder(10, "a", &got, mu)

	s.bus.Subscribe(events.AttackRolled, listener)
	s.bus.Unsubscribe(events.AttackRolled, listener)

	s.NoError(s.bus.Emit(events.NewGameEvent(events.AttackRolled, nil)))
	s.Empty(got)
}

func (s *EventBusSuite) TestPriorityOrdering() {
	var got []string
	mu := &sync.Mutex{}

	s.bus.Subscribe(events.KillingBlow, recorder(30, "metrics", &got, mu))
	s.bus.Subscribe(events.KillingBlow, recorder(10, "narrator", &got, mu))
	s.bus.Subscribe(events.KillingBlow, recorder(20, "first at 20", &got, mu))
	s.bus.Subscribe(events.KillingBlow, recorder(20, "second at 20", &got, mu))

	s.NoError(s.bus.Emit(events.NewGameEvent(events.KillingBlow, nil)))
	s.Equal([]string{"narrator", "first at 20", "second at 20", "metrics"}, got)
}

func (s *EventBusSuite) TestEventCancellation() {
	var got []string
	mu := &sync.Mutex{}

	s.bus.Subscribe(events.ItemLooted, events.ListenerFunc(10, func(event *events.GameEvent) error {
		event.Cancel()
		return nil
	}))
	s.bus.Subscribe(events.ItemLooted, recorder(20, "late", &got, mu))

	event := events.NewGameEvent(events.ItemLooted, nil)
	s.NoError(s.bus.Emit(event))

	s.True(event.IsCancelled())
	s.Empty(got)
}

func (s *EventBusSuite) TestListenerError() {
	listener := mockevents.NewMockEventListener(s.ctrl)
	listener.EXPECT().Priority().Return(0).AnyTimes()
	listener.EXPECT().HandleEvent(gomock.Any()).Return(errors.New("listener exploded"))

	s.bus.Subscribe(events.EntityHealed, listener)

	err := s.bus.Emit(events.NewGameEvent(events.EntityHealed, nil))

	s.Error(err)
	s.Contains(err.Error(), "error handling event EntityHealed")
	s.Contains(err.Error(), "listener exploded")
}

func (s *EventBusSuite) TestEmitNil() {
	err := s.bus.Emit(nil)

	s.True(dnderr.IsInvalidArgument(err))
}

func (s *EventBusSuite) TestSubscribeAll() {
	var got []string
	mu := &sync.Mutex{}
	s.bus.SubscribeAll(events.AllEventTypes(), recorder(0, "seen", &got, mu))

	for _, t := range events.AllEventTypes() {
		s.Equal(1, s.bus.ListenerCount(t), t.String())
	}
	s.Equal(len(events.AllEventTypes()), s.bus.TotalListenerCount())

	s.NoError(s.bus.Emit(events.NewGameEvent(events.CombatEnded, nil)))
	s.Equal([]string{"seen"}, got)
}

func (s *EventBusSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(3)

		go func(id int) {
			defer wg.Done()
			s.bus.Subscribe(events.AttackRolled, events.ListenerFunc(id, func(*events.GameEvent) error { return nil }))
		}(i)

		go func() {
			defer wg.Done()
			_ = s.bus.Emit(events.NewGameEvent(events.AttackRolled, nil)) //nolint:errcheck // test concurrent access
		}()

		go func(id int) {
			defer wg.Done()
			if id%3 == 0 {
				s.bus.Clear()
			}
		}(i)
	}

	wg.Wait()
}

func (s *EventBusSuite) TestListenerCountAndClear() {
	var got []string
	mu := &sync.Mutex{}
	first := recorder(10, "first", &got, mu)
	second := recorder(20, "second", &got, mu)

	s.Equal(0, s.bus.ListenerCount(events.AttackHit))

	s.bus.Subscribe(events.AttackHit, first)
	s.bus.Subscribe(events.AttackHit, second)
	s.bus.Subscribe(events.AttackMissed, first)
	s.Equal(2, s.bus.ListenerCount(events.AttackHit))

	s.bus.Unsubscribe(events.AttackHit, first)
	s.Equal(1, s.bus.ListenerCount(events.AttackHit))
	s.Equal(1, s.bus.ListenerCount(events.AttackMissed))

	s.bus.Clear()
	s.Equal(0, s.bus.TotalListenerCount())
}

func (s *EventBusSuite) TestOnlyMatchingTypeIsDelivered() {
	var got []string
	mu := &sync.Mutex{}

	s.bus.Subscribe(events.AttackHit, recorder(10, "hit", &got, mu))
	s.bus.Subscribe(events.AttackMissed, recorder(10, "miss", &got, mu))

	s.NoError(s.bus.Emit(events.NewGameEvent(events.AttackMissed, nil)))
	s.Equal([]string{"miss"}, got)
}
