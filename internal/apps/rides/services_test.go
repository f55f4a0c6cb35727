package rides

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBookingRequest_Validate(t *testing.T) {
	valid := BookingRequest{CustomerName: "Alice", Pickup: "A", Destination: "B", VehicleType: "car"}

	cases := []struct {
		name    string
		mutate  func(*BookingRequest)
		wantErr bool
	}{
		{"valid car", func(r *BookingRequest) {}, false},
		{"valid bike", func(r *BookingRequest) { r.VehicleType = "bike" }, false},
		{"valid auto", func(r *BookingRequest) { r.VehicleType = "auto" }, false},
		{"missing name", func(r *BookingRequest) { r.CustomerName = "" }, true},
		{"missing pickup", func(r *BookingRequest) { r.Pickup = "" }, true},
		{"missing destination", func(r *BookingRequest) { r.Destination = "" }, true},
		{"unknown vehicle", func(r *BookingRequest) { r.VehicleType = "rocket" }, true},
		{"empty vehicle", func(r *BookingRequest) { r.VehicleType = "" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := req.validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFareFor(t *testing.T) {
	cases := map[string]float64{
		"car":  150,
		"bike": 80,
		"auto": 100,
	}
	for vehicleType, want := range cases {
		if got := fareFor(vehicleType); got != want {
			t.Errorf("fareFor(%q) = %v, want %v", vehicleType, got, want)
		}
	}
}

func TestArrivalFor(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := map[string]time.Duration{
		"car":  8 * time.Minute,
		"bike": 5 * time.Minute,
		"auto": 6 * time.Minute,
	}
	for vehicleType, offset := range cases {
		if got := arrivalFor(vehicleType, now); !got.Equal(now.Add(offset)) {
			t.Errorf("arrivalFor(%q) = %v, want %v", vehicleType, got, now.Add(offset))
		}
	}
}

func TestNewRaiderID(t *testing.T) {
	id := uuid.MustParse("1a2b3c4d-0000-0000-0000-000000000000")
	got := newRaiderID(id)
	if got != "RB-R-1A2B3C" {
		t.Errorf("newRaiderID() = %q, want RB-R-1A2B3C", got)
	}
	if !strings.HasPrefix(newRaiderID(uuid.New()), "RB-R-") {
		t.Error("raider ids must carry the RB-R- prefix")
	}
}
