package service

import (
	"errors"
	"testing"

	"travelbuddy/internal/model"
	"travelbuddy/internal/repository/inmem"
)

func newTripService() *TripService {
	return NewTripService(inmem.NewTripStore())
}

func TestCreateTripValidation(t *testing.T) {
	ts := newTripService()

	cases := []struct {
		name string
		trip model.Trip
		want error
	}{
		{"пустой маршрут", model.Trip{ArrivalPlace: "Mumbai", DepartureDate: "2026-09-10", RiderID: 1, MaxSeats: 2}, model.ErrEmptyRoute},
		{"некорректная дата", model.Trip{DeparturePlace: "Pune", ArrivalPlace: "Mumbai", DepartureDate: "10.09.2026", RiderID: 1, MaxSeats: 2}, model.ErrBadDate},
		{"нулевая вместимость", model.Trip{DeparturePlace: "Pune", ArrivalPlace: "Mumbai", DepartureDate: "2026-09-10", RiderID: 1, MaxSeats: 0}, model.ErrInvalidSeats},
		{"отрицательная вместимость", model.Trip{DeparturePlace: "Pune", ArrivalPlace: "Mumbai", DepartureDate: "2026-09-10", RiderID: 1, MaxSeats: -3}, model.ErrInvalidSeats},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trip := tc.trip
			if _, err := ts.CreateTrip(&trip); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCreateTripRoundTrip(t *testing.T) {
	ts := newTripService()

	created, err := ts.CreateTrip(&model.Trip{
		DeparturePlace: "Pune",
		ArrivalPlace:   "Mumbai",
		DepartureDate:  "2026-09-10",
		RiderID:        7,
		MaxSeats:       3,
	})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("ожидался присвоенный идентификатор")
	}

	mine, err := ts.GetTripsByRider(7)
	if err != nil {
		t.Fatalf("GetTripsByRider: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("поездок = %d, ожидалась ровно одна", len(mine))
	}
	if mine[0] != *created {
		t.Errorf("поездка изменилась при чтении: %+v != %+v", mine[0], *created)
	}
}

func TestSearchTripsWindow(t *testing.T) {
	ts := newTripService()

	// поездки на D-3 .. D+3 вокруг искомой даты 2026-09-10
	dates := []string{"2026-09-07", "2026-09-08", "2026-09-09", "2026-09-10", "2026-09-11", "2026-09-12", "2026-09-13"}
	for _, d := range dates {
		if _, err := ts.CreateTrip(&model.Trip{
			DeparturePlace: "Pune",
			ArrivalPlace:   "Mumbai",
			DepartureDate:  d,
			RiderID:        1,
			MaxSeats:       2,
		}); err != nil {
			t.Fatalf("CreateTrip(%s): %v", d, err)
		}
	}
	// другой маршрут в окне не попадает в выдачу
	if _, err := ts.CreateTrip(&model.Trip{
		DeparturePlace: "Pune",
		ArrivalPlace:   "Goa",
		DepartureDate:  "2026-09-10",
		RiderID:        1,
		MaxSeats:       2,
	}); err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}

	found, err := ts.SearchTrips("pune", "MUMBAI", "2026-09-10")
	if err != nil {
		t.Fatalf("SearchTrips: %v", err)
	}
	if len(found) != 5 {
		t.Fatalf("найдено %d поездок, ожидалось 5 (окно ±2 дня включительно)", len(found))
	}
	for _, trip := range found {
		if trip.DepartureDate < "2026-09-08" || trip.DepartureDate > "2026-09-12" {
			t.Errorf("поездка с датой %s вне окна", trip.DepartureDate)
		}
	}
}

func TestSearchTripsBadDate(t *testing.T) {
	ts := newTripService()
	if _, err := ts.SearchTrips("Pune", "Mumbai", "сентябрь"); !errors.Is(err, model.ErrBadDate) {
		t.Errorf("err = %v, want ErrBadDate", err)
	}
}
