package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/JesusGGUNCC/Student-Made/internal/domain/model"
	repo "github.com/JesusGGUNCC/Student-Made/internal/repository"
)

// 支払い方法で存在しないことを表す（Handlerが404に変換する）
var ErrNotFound = errors.New("not found")

type PaymentDTO struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	CardHolder  string `json:"card_holder"`
	CardLast4   string `json:"card_last4"`
	CardType    string `json:"card_type"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CreatedAt   string `json:"created_at"`
}

type PaymentCreateRequest struct {
	CardHolder  string `json:"card_holder"`
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
}

type PaymentUsecase struct {
	payments repo.PaymentRepository
}

func NewPaymentUsecase(payments repo.PaymentRepository) *PaymentUsecase {
	return &PaymentUsecase{payments: payments}
}

func (u *PaymentUsecase) List(ctx context.Context, username string) ([]PaymentDTO, error) {
	if username == "" {
		return nil, ErrUnauthorized
	}

	list, err := u.payments.ListByUsername(ctx, username)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]PaymentDTO, 0, len(list))
	for i := range list {
		out = append(out, toPaymentDTO(&list[i]))
	}
	return out, nil
}

func (u *PaymentUsecase) Create(ctx context.Context, username string, req PaymentCreateRequest) (PaymentDTO, error) {
	if username == "" {
		return PaymentDTO{}, ErrUnauthorized
	}

	//入力チェック。カード番号そのものは保存しない
	number := strings.ReplaceAll(strings.TrimSpace(req.CardNumber), " ", "")
	if strings.TrimSpace(req.CardHolder) == "" || number == "" {
		return PaymentDTO{}, ErrValidation
	}
	if !isDigits(number) || len(number) < 13 || len(number) > 19 {
		return PaymentDTO{}, ErrValidation
	}
	if req.ExpiryMonth < 1 || req.ExpiryMonth > 12 {
		return PaymentDTO{}, ErrValidation
	}
	if req.ExpiryYear < time.Now().Year() {
		return PaymentDTO{}, ErrValidation
	}

	p := model.Payment{
		Username:    username,
		CardHolder:  req.CardHolder,
		CardLast4:   number[len(number)-4:],
		CardType:    cardTypeOf(number),
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CreatedAt:   time.Now(),
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		return PaymentDTO{}, ErrInternal
	}

	return toPaymentDTO(&created), nil
}

func (u *PaymentUsecase) Delete(ctx context.Context, username string, paymentID int64) error {
	if username == "" {
		return ErrUnauthorized
	}
	if paymentID <= 0 {
		return ErrValidation
	}

	//所有チェック（本人のみ）
	p, err := u.payments.FindByID(ctx, paymentID)
	if err != nil {
		if err == repo.ErrNotFound {
			return ErrNotFound
		}
		return ErrInternal
	}
	if p.Username != username {
		return ErrForbidden
	}

	if err := u.payments.Delete(ctx, paymentID); err != nil {
		if err == repo.ErrNotFound {
			return ErrNotFound
		}
		//注文が参照中などで削除できない 409
		return ErrConflict
	}

	return nil
}

func toPaymentDTO(p *model.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          p.ID,
		Username:    p.Username,
		CardHolder:  p.CardHolder,
		CardLast4:   p.CardLast4,
		CardType:    p.CardType,
		ExpiryMonth: p.ExpiryMonth,
		ExpiryYear:  p.ExpiryYear,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// 先頭桁からの簡易判定
func cardTypeOf(number string) string {
	switch number[0] {
	case '4':
		return "Visa"
	case '5':
		return "Mastercard"
	case '3':
		return "Amex"
	case '6':
		return "Discover"
	default:
		return "Other"
	}
}
