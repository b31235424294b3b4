package queries

import (
	"time"

	"kayak-console/internal/domain/booking"
	"kayak-console/internal/domain/invoice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type BookingView struct {
	ID           uuid.UUID              `json:"id"`
	Reference    string                 `json:"reference"`
	SlotID       *uuid.UUID             `json:"slot_id,omitempty"`
	SlotStart    *time.Time             `json:"slot_start,omitempty"`
	TourName     string                 `json:"tour_name"`
	CustomerName string                 `json:"customer_name"`
	Phone        string                 `json:"phone"`
	Email        string                 `json:"email"`
	Qty          int                    `json:"qty"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	Status       booking.Status         `json:"status"`
	RefundStatus *booking.RefundStatus  `json:"refund_status,omitempty"`
	RefundAmount *decimal.Decimal       `json:"refund_amount,omitempty"`
	CheckoutID   *string                `json:"checkout_id,omitempty"`
	Notes        *string                `json:"notes,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

type BookingSlotGroup struct {
	TimeLabel  string          `json:"time_label"`
	Bookings   []BookingView   `json:"bookings"`
	TotalPax   int             `json:"total_pax"`
	TotalPrice decimal.Decimal `json:"total_price"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	TotalDue   decimal.Decimal `json:"total_due"`
}

type BookingDayGroup struct {
	DayKey     string             `json:"day_key"`
	DayLabel   string             `json:"day_label"`
	Slots      []BookingSlotGroup `json:"slots"`
	TotalPax   int                `json:"total_pax"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	TotalPaid  decimal.Decimal    `json:"total_paid"`
	TotalDue   decimal.Decimal    `json:"total_due"`
}

type SlotView struct {
	ID            uuid.UUID        `json:"id"`
	TourID        uuid.UUID        `json:"tour_id"`
	TourName      string           `json:"tour_name"`
	StartTime     time.Time        `json:"start_time"`
	CapacityTotal int              `json:"capacity_total"`
	Booked        int              `json:"booked"`
	Held          int              `json:"held"`
	Available     int              `json:"available"`
	Status        string           `json:"status"`
	PriceOverride *decimal.Decimal `json:"price_per_person_override,omitempty"`
	IsPeak        bool             `json:"is_peak"`
}

type SlotDayGroup struct {
	DayKey   string     `json:"day_key"`
	DayLabel string     `json:"day_label"`
	Slots    []SlotView `json:"slots"`
}

type TourView struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	DurationMinutes int              `json:"duration_minutes"`
	BasePrice       *decimal.Decimal `json:"base_price_per_person,omitempty"`
	PeakPrice       *decimal.Decimal `json:"peak_price_per_person,omitempty"`
	Active          bool             `json:"active"`
}

type ManifestEntry struct {
	BookingID    uuid.UUID       `json:"booking_id"`
	TimeLabel    string          `json:"time_label"`
	TourName     string          `json:"tour_name"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Qty          int             `json:"qty"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       booking.Status  `json:"status"`
}

type DashboardStats struct {
	BookingsToday int             `json:"bookings_today"`
	PaxToday      int             `json:"pax_today"`
	RevenueToday  decimal.Decimal `json:"revenue_today"`
}

type DashboardAlerts struct {
	RefundsRequested     int `json:"refunds_requested"`
	ConversationsWaiting int `json:"conversations_waiting"`
}

type DashboardView struct {
	DayLabel string          `json:"day_label"`
	Manifest []ManifestEntry `json:"manifest"`
	Stats    DashboardStats  `json:"stats"`
	Alerts   DashboardAlerts `json:"alerts"`
}

type InvoiceDayGroup struct {
	DayKey   string            `json:"day_key"`
	DayLabel string            `json:"day_label"`
	Invoices []invoice.Invoice `json:"invoices"`
	Total    decimal.Decimal   `json:"total"`
	Paid     decimal.Decimal   `json:"paid"`
	Due      decimal.Decimal   `json:"due"`
}

type InvoiceListView struct {
	Days        []InvoiceDayGroup `json:"days"`
	Outstanding decimal.Decimal   `json:"outstanding"`
}

type RefundQueueView struct {
	Requested      []BookingView   `json:"requested"`
	TotalRequested decimal.Decimal `json:"total_requested"`
	Recent         []BookingView   `json:"recent"`
}

type BroadcastTarget struct {
	BookingID    uuid.UUID `json:"booking_id"`
	SlotID       uuid.UUID `json:"slot_id"`
	SlotStart    time.Time `json:"slot_start"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Qty          int       `json:"qty"`
}

type BroadcastHistoryItem struct {
	ID             uuid.UUID   `json:"id"`
	Action         string      `json:"action"`
	Message        string      `json:"message"`
	SlotIDs        []uuid.UUID `json:"slot_ids"`
	RecipientCount int         `json:"recipient_count"`
	CreatedAt      time.Time   `json:"created_at"`
}

type PhotoHistoryItem struct {
	ID         uuid.UUID  `json:"id"`
	SlotID     *uuid.UUID `json:"slot_id,omitempty"`
	PhotoURL   string     `json:"photo_url"`
	TourName   string     `json:"tour_name"`
	SlotStart  *time.Time `json:"slot_start,omitempty"`
	UploadedAt time.Time  `json:"uploaded_at"`
}

type VoucherView struct {
	ID             uuid.UUID        `json:"id"`
	Code           string           `json:"code"`
	Status         string           `json:"status"`
	Type           *string          `json:"type,omitempty"`
	TourName       *string          `json:"tour_name,omitempty"`
	Value          *decimal.Decimal `json:"value,omitempty"`
	RecipientName  *string          `json:"recipient_name,omitempty"`
	RecipientEmail *string          `json:"recipient_email,omitempty"`
	BuyerName      *string          `json:"buyer_name,omitempty"`
	BuyerEmail     *string          `json:"buyer_email,omitempty"`
	ExpiresAt      *time.Time       `json:"expires_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

type VoucherDayGroup struct {
	DayKey   string        `json:"day_key"`
	DayLabel string        `json:"day_label"`
	Vouchers []VoucherView `json:"vouchers"`
}

type PeakRange struct {
	TourID    uuid.UUID       `json:"tour_id"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Price     decimal.Decimal `json:"price"`
	SlotCount int             `json:"slot_count"`
}

type PricingView struct {
	Tours  []TourView  `json:"tours"`
	Ranges []PeakRange `json:"ranges"`
}
