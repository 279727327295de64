package inbound

import (
	"context"
	"errors"
	"testing"

	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/payment/usecase"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/messaging"
	"github.com/storemvp/storemvp/internal/shared/event"
)

type stubUsecase struct {
	consumed   []event.OrderPlacedMessage
	consumeErr error
}

func (s *stubUsecase) PaymentList(context.Context) ([]entity.Payment, error) {
	return nil, nil
}

func (s *stubUsecase) PaymentDetail(context.Context, string) (*entity.Payment, error) {
	return nil, nil
}

func (s *stubUsecase) PaymentCreate(context.Context, usecase.PaymentInput) (*entity.Payment, error) {
	return nil, nil
}

func (s *stubUsecase) PaymentUpdate(context.Context, string, usecase.PaymentInput) error {
	return nil
}

func (s *stubUsecase) PaymentDelete(context.Context, string) error {
	return nil
}

func (s *stubUsecase) ConsumeOrderPlaced(_ context.Context, msg event.OrderPlacedMessage) error {
	s.consumed = append(s.consumed, msg)
	return s.consumeErr
}

type staticID struct{}

func (staticID) Generate() string {
	return "generated-cid"
}

func newHandler(uc *stubUsecase) *MQHandler {
	return &MQHandler{uc: uc, uuid: staticID{}, ins: instrument.NewNoop()}
}

func TestOrderPlacedPayment(t *testing.T) {
	// Arrange
	uc := &stubUsecase{}
	h := newHandler(uc)

	msg := messaging.Message{
		Body:    []byte(`{"order_id":"o-1","number":42,"customer_id":"c-1","product_id":"p-1","quantity":2,"total":159.98}`),
		Headers: map[string]string{"cID": "trace-1"},
	}

	// Act
	err := h.OrderPlacedPayment(context.Background(), msg)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uc.consumed) != 1 {
		t.Fatalf("expected one consumed event, got %d", len(uc.consumed))
	}
	ev := uc.consumed[0]
	if ev.OrderID != "o-1" || ev.Total != 159.98 || ev.Number != 42 {
		t.Fatalf("unexpected payload: %+v", ev)
	}
}

func TestOrderPlacedPaymentMalformedBodySkips(t *testing.T) {
	// Arrange
	uc := &stubUsecase{}
	h := newHandler(uc)

	// Act: poison messages must not be redelivered forever
	err := h.OrderPlacedPayment(context.Background(), messaging.Message{Body: []byte("not json")})

	// Assert
	if err != nil {
		t.Fatalf("expected malformed body to be dropped, got %v", err)
	}
	if len(uc.consumed) != 0 {
		t.Fatal("expected no usecase call for malformed body")
	}
}

func TestOrderPlacedPaymentPropagatesUsecaseError(t *testing.T) {
	// Arrange
	uc := &stubUsecase{consumeErr: errors.New("store unavailable")}
	h := newHandler(uc)

	// Act
	err := h.OrderPlacedPayment(context.Background(), messaging.Message{
		Body: []byte(`{"order_id":"o-1","total":10}`),
	})

	// Assert: the driver decides on redelivery, so the error must surface
	if err == nil {
		t.Fatal("expected the usecase error to propagate")
	}
}
