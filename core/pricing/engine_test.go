package pricing

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/farecast/core/market"
	"github.com/skyops/farecast/core/model"
	"github.com/skyops/farecast/core/prediction"
	"github.com/skyops/farecast/internal/eventbus"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func testGenerator() *market.Generator {
	return market.NewGenerator(
		market.WithRand(rand.New(rand.NewSource(42))),
		market.WithClock(func() time.Time { return testNow }),
	)
}

func testFlight(id string, price float64) model.Flight {
	return model.Flight{
		ID:            id,
		Number:        "SK100",
		Airline:       "SkyOps",
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureTime: "09:00",
		ArrivalTime:   "12:00",
		Aircraft:      "Boeing 737",
		TotalSeats:    180,
		BookedSeats:   120,
		Price:         price,
		Status:        model.StatusScheduled,
		Date:          "2026-03-15",
	}
}

func TestNewEngine_RequiresGenerator(t *testing.T) {
	_, err := NewEngine(nil, nil, nil, nil, nil)
	require.Error(t, err)
}

func TestEngine_PriceFlightRecordsHistory(t *testing.T) {
	e, err := NewEngine(testGenerator(), prediction.Naive{}, nil, nil, nil)
	require.NoError(t, err)

	f := testFlight("FL0001", 300)
	u, mc := e.PriceFlight(f)
	assert.Equal(t, "FL0001", u.FlightID)
	assert.Equal(t, 300.0, u.OldPrice)
	assert.NotEmpty(t, u.Reason)
	assert.NotEmpty(t, string(mc.DemandLevel))
	assert.Len(t, e.History("FL0001"), 1)

	e.PriceFlight(f)
	assert.Len(t, e.History("FL0001"), 2)
}

func TestEngine_BatchPriceKeepsOrder(t *testing.T) {
	e, err := NewEngine(testGenerator(), nil, nil, nil, nil)
	require.NoError(t, err)

	flights := []model.Flight{
		testFlight("FL0001", 300),
		testFlight("FL0002", 150),
		testFlight("FL0003", 420),
	}
	updates := e.BatchPrice(flights)
	require.Len(t, updates, 3)
	for i, f := range flights {
		assert.Equal(t, f.ID, updates[i].FlightID)
		assert.Equal(t, f.Price, updates[i].OldPrice)
	}
}

func TestEngine_SubscribersAndAlerts(t *testing.T) {
	e, err := NewEngine(testGenerator(), nil, nil, nil, nil)
	require.NoError(t, err)

	var notified int32
	tok := e.Subscribe("FL0001", SubscriberFunc(func(u model.PriceUpdate) {
		atomic.AddInt32(&notified, 1)
	}))
	var alerted int32
	// Every computed price satisfies a very high threshold.
	atok := e.CreateAlert("FL0001", 1e9, func(price float64) {
		atomic.AddInt32(&alerted, 1)
	})

	e.PriceFlight(testFlight("FL0001", 300))
	assert.EqualValues(t, 1, atomic.LoadInt32(&notified))
	assert.EqualValues(t, 1, atomic.LoadInt32(&alerted))

	e.Unsubscribe(tok)
	e.RemoveAlert(atok)
	e.PriceFlight(testFlight("FL0001", 300))
	assert.EqualValues(t, 1, atomic.LoadInt32(&notified))
	assert.EqualValues(t, 1, atomic.LoadInt32(&alerted))
}

func TestEngine_PublishesToBus(t *testing.T) {
	bus := eventbus.New[model.PriceUpdate]()
	defer bus.Close()
	sub := bus.Subscribe()

	e, err := NewEngine(testGenerator(), nil, nil, nil, bus)
	require.NoError(t, err)
	e.PriceFlight(testFlight("FL0001", 300))

	select {
	case u := <-sub:
		assert.Equal(t, "FL0001", u.FlightID)
	case <-time.After(time.Second):
		t.Fatal("no update published to the bus")
	}
}

func TestEngine_Trend(t *testing.T) {
	e, err := NewEngine(testGenerator(), nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, model.TrendStable, e.Trend("FL0001").Trend)
}

func TestBestCurrentDeals(t *testing.T) {
	updates := []model.PriceUpdate{
		{FlightID: "a", Discount: 10},
		{FlightID: "b", Discount: 30},
		{FlightID: "c", Discount: 16},
		{FlightID: "d", Discount: 15},
		{FlightID: "e", Discount: 52},
	}
	deals := BestCurrentDeals(updates)
	require.Len(t, deals, 3)
	assert.Equal(t, "e", deals[0].FlightID)
	assert.Equal(t, "b", deals[1].FlightID)
	assert.Equal(t, "c", deals[2].FlightID)
}

func TestBestCurrentDeals_Cap(t *testing.T) {
	updates := make([]model.PriceUpdate, 15)
	for i := range updates {
		updates[i] = model.PriceUpdate{Discount: 20 + i}
	}
	assert.Len(t, BestCurrentDeals(updates), 10)
}
