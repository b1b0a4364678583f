package ingestion

import (
	"encoding/json"
	"fmt"
	"time"

	"EqCore/internal/assets"
	"EqCore/internal/event"
	"EqCore/internal/numeric"

	"github.com/google/uuid"
)

// ParseRawEvent converts a RawEvent (JSON bytes + event type string) into a
// typed event.Event. The ingestion shell validates, parses, and converts raw
// extrinsics before sending them to the deterministic core.
func ParseRawEvent(raw RawEvent, eventType string) (event.Event, error) {
	switch eventType {
	case "Transfer":
		return parseTransfer(raw.Data)
	case "Deposit":
		return parseDeposit(raw.Data)
	case "Withdraw":
		return parseWithdraw(raw.Data)
	case "RegisterBailsman":
		return parseRegisterBailsman(raw.Data)
	case "UnregisterBailsman":
		return parseUnregisterBailsman(raw.Data)
	case "Redistribute":
		return parseRedistribute(raw.Data)
	case "CreateOrder":
		return parseCreateOrder(raw.Data)
	case "DeleteOrder":
		return parseDeleteOrder(raw.Data)
	case "Reinit":
		return parseReinit(raw.Data)
	case "PriceUpdate":
		return parsePriceUpdate(raw.Data)
	case "AssetUpdate":
		return parseAssetUpdate(raw.Data)
	case "BlockFinalize":
		return parseBlockFinalize(raw.Data)
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}
}

// --- JSON wire formats ---
// These structs represent the JSON payloads received from NATS. Field names
// use snake_case to match upstream producers. Amounts travel as raw
// 1e9-scaled inner units: unsigned for balances, signed for prices.

type transferJSON struct {
	TransactionID string `json:"transaction_id"`
	From          string `json:"from"`
	To            string `json:"to"`
	Asset         uint16 `json:"asset"`
	Amount        uint64 `json:"amount"`
	Sequence      int64  `json:"sequence"`
}

func parseTransfer(data []byte) (*event.Transfer, error) {
	var j transferJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Transfer: %w", err)
	}
	txID, err := uuid.Parse(j.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("parse transaction_id: %w", err)
	}
	from, err := uuid.Parse(j.From)
	if err != nil {
		return nil, fmt.Errorf("parse from: %w", err)
	}
	to, err := uuid.Parse(j.To)
	if err != nil {
		return nil, fmt.Errorf("parse to: %w", err)
	}
	return &event.Transfer{
		TransactionID: txID,
		From:          from,
		To:            to,
		Asset:         assets.Asset(j.Asset),
		Amount:        numeric.FromInner(j.Amount),
		Sequence:      j.Sequence,
	}, nil
}

type balanceOpJSON struct {
	TransactionID string `json:"transaction_id"`
	Who           string `json:"who"`
	Asset         uint16 `json:"asset"`
	Amount        uint64 `json:"amount"`
	Sequence      int64  `json:"sequence"`
}

func parseDeposit(data []byte) (*event.Deposit, error) {
	var j balanceOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Deposit: %w", err)
	}
	txID, err := uuid.Parse(j.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("parse transaction_id: %w", err)
	}
	who, err := uuid.Parse(j.Who)
	if err != nil {
		return nil, fmt.Errorf("parse who: %w", err)
	}
	return &event.Deposit{
		TransactionID: txID,
		Who:           who,
		Asset:         assets.Asset(j.Asset),
		Amount:        numeric.FromInner(j.Amount),
		Sequence:      j.Sequence,
	}, nil
}

func parseWithdraw(data []byte) (*event.Withdraw, error) {
	var j balanceOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Withdraw: %w", err)
	}
	txID, err := uuid.Parse(j.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("parse transaction_id: %w", err)
	}
	who, err := uuid.Parse(j.Who)
	if err != nil {
		return nil, fmt.Errorf("parse who: %w", err)
	}
	return &event.Withdraw{
		TransactionID: txID,
		Who:           who,
		Asset:         assets.Asset(j.Asset),
		Amount:        numeric.FromInner(j.Amount),
		Sequence:      j.Sequence,
	}, nil
}

type bailsmanOpJSON struct {
	RequestID string `json:"request_id"`
	Who       string `json:"who"`
	Sequence  int64  `json:"sequence"`
}

func parseRegisterBailsman(data []byte) (*event.RegisterBailsman, error) {
	var j bailsmanOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse RegisterBailsman: %w", err)
	}
	reqID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	who, err := uuid.Parse(j.Who)
	if err != nil {
		return nil, fmt.Errorf("parse who: %w", err)
	}
	return &event.RegisterBailsman{RequestID: reqID, Who: who, Sequence: j.Sequence}, nil
}

func parseUnregisterBailsman(data []byte) (*event.UnregisterBailsman, error) {
	var j bailsmanOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse UnregisterBailsman: %w", err)
	}
	reqID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	who, err := uuid.Parse(j.Who)
	if err != nil {
		return nil, fmt.Errorf("parse who: %w", err)
	}
	return &event.UnregisterBailsman{RequestID: reqID, Who: who, Sequence: j.Sequence}, nil
}

type advisoryOpJSON struct {
	RequestID      string `json:"request_id"`
	Who            string `json:"who"`
	AuthorityIndex uint32 `json:"authority_index"`
	SubmissionID   int64  `json:"submission_id,omitempty"`
	Sequence       int64  `json:"sequence"`
}

func parseRedistribute(data []byte) (*event.Redistribute, error) {
	var j advisoryOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Redistribute: %w", err)
	}
	reqID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	who, err := uuid.Parse(j.Who)
	if err != nil {
		return nil, fmt.Errorf("parse who: %w", err)
	}
	return &event.Redistribute{
		RequestID:      reqID,
		Who:            who,
		AuthorityIndex: j.AuthorityIndex,
		Sequence:       j.Sequence,
	}, nil
}

func parseReinit(data []byte) (*event.Reinit, error) {
	var j advisoryOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Reinit: %w", err)
	}
	reqID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	who, err := uuid.Parse(j.Who)
	if err != nil {
		return nil, fmt.Errorf("parse who: %w", err)
	}
	return &event.Reinit{
		RequestID:      reqID,
		Who:            who,
		AuthorityIndex: j.AuthorityIndex,
		Sequence:       j.Sequence,
	}, nil
}

type createOrderJSON struct {
	RequestID  string `json:"request_id"`
	Who        string `json:"who"`
	Asset      uint16 `json:"asset"`
	Side       string `json:"side"` // "buy" or "sell"
	Kind       string `json:"kind"` // "limit" or "market"
	LimitPrice int64  `json:"limit_price"`
	Amount     uint64 `json:"amount"`
	ExpiresAt  int64  `json:"expires_at"`
	Sequence   int64  `json:"sequence"`
}

func parseCreateOrder(data []byte) (*event.CreateOrder, error) {
	var j createOrderJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse CreateOrder: %w", err)
	}
	reqID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	who, err := uuid.Parse(j.Who)
	if err != nil {
		return nil, fmt.Errorf("parse who: %w", err)
	}
	side, err := sideFromWire(j.Side)
	if err != nil {
		return nil, err
	}
	kind, err := kindFromWire(j.Kind)
	if err != nil {
		return nil, err
	}
	return &event.CreateOrder{
		RequestID:  reqID,
		Who:        who,
		Asset:      assets.Asset(j.Asset),
		Side:       side,
		Kind:       kind,
		LimitPrice: numeric.Price(j.LimitPrice),
		Amount:     numeric.FromInner(j.Amount),
		ExpiresAt:  j.ExpiresAt,
		Sequence:   j.Sequence,
	}, nil
}

type deleteOrderJSON struct {
	RequestID      string `json:"request_id"`
	Who            string `json:"who"`
	Asset          uint16 `json:"asset"`
	OrderID        uint64 `json:"order_id"`
	Price          int64  `json:"price"`
	Reason         string `json:"reason"`
	AuthorityIndex uint32 `json:"authority_index"`
	SubmissionID   int64  `json:"submission_id,omitempty"`
	Sequence       int64  `json:"sequence"`
}

func parseDeleteOrder(data []byte) (*event.DeleteOrder, error) {
	var j deleteOrderJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse DeleteOrder: %w", err)
	}
	reqID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	who, err := uuid.Parse(j.Who)
	if err != nil {
		return nil, fmt.Errorf("parse who: %w", err)
	}
	reason, err := deleteReasonFromWire(j.Reason)
	if err != nil {
		return nil, err
	}
	return &event.DeleteOrder{
		RequestID:      reqID,
		Who:            who,
		Asset:          assets.Asset(j.Asset),
		OrderID:        j.OrderID,
		Price:          numeric.Price(j.Price),
		Reason:         reason,
		AuthorityIndex: j.AuthorityIndex,
		Sequence:       j.Sequence,
	}, nil
}

type priceUpdateJSON struct {
	UpdateID     string `json:"update_id"`
	Asset        uint16 `json:"asset"`
	Price        int64  `json:"price"`
	FeedSequence int64  `json:"feed_sequence"`
}

func parsePriceUpdate(data []byte) (*event.PriceUpdate, error) {
	var j priceUpdateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse PriceUpdate: %w", err)
	}
	updateID, err := uuid.Parse(j.UpdateID)
	if err != nil {
		return nil, fmt.Errorf("parse update_id: %w", err)
	}
	return &event.PriceUpdate{
		UpdateID:     updateID,
		Asset:        assets.Asset(j.Asset),
		Price:        numeric.Price(j.Price),
		FeedSequence: j.FeedSequence,
	}, nil
}

type assetUpdateJSON struct {
	UpdateID           string `json:"update_id"`
	Asset              uint16 `json:"asset"`
	LotSize            uint64 `json:"lot_size"`
	PriceStep          int64  `json:"price_step"`
	MakerFeePPM        uint32 `json:"maker_fee_ppm"`
	TakerFeePPM        uint32 `json:"taker_fee_ppm"`
	CollateralDiscount uint8  `json:"collateral_discount"`
	DexEnabled         bool   `json:"dex_enabled"`
	Sequence           int64  `json:"sequence"`
}

func parseAssetUpdate(data []byte) (*event.AssetUpdate, error) {
	var j assetUpdateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse AssetUpdate: %w", err)
	}
	updateID, err := uuid.Parse(j.UpdateID)
	if err != nil {
		return nil, fmt.Errorf("parse update_id: %w", err)
	}
	return &event.AssetUpdate{
		UpdateID:           updateID,
		Asset:              assets.Asset(j.Asset),
		LotSize:            numeric.FromInner(j.LotSize),
		PriceStep:          numeric.Price(j.PriceStep),
		MakerFeePPM:        j.MakerFeePPM,
		TakerFeePPM:        j.TakerFeePPM,
		CollateralDiscount: j.CollateralDiscount,
		DexEnabled:         j.DexEnabled,
		Sequence:           j.Sequence,
	}, nil
}

type blockFinalizeJSON struct {
	BlockNumber    uint64 `json:"block_number"`
	BlockTime      int64  `json:"block_time"` // Unix seconds
	ValidatorCount uint32 `json:"validator_count"`
	Sequence       int64  `json:"sequence"`
}

func parseBlockFinalize(data []byte) (*event.BlockFinalize, error) {
	var j blockFinalizeJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse BlockFinalize: %w", err)
	}
	return &event.BlockFinalize{
		BlockNumber:    j.BlockNumber,
		BlockTime:      time.Unix(j.BlockTime, 0).UTC(),
		ValidatorCount: j.ValidatorCount,
		Sequence:       j.Sequence,
	}, nil
}

// --- Wire enum mapping ---

func sideFromWire(s string) (event.OrderSide, error) {
	switch s {
	case "buy":
		return event.OrderSideBuy, nil
	case "sell":
		return event.OrderSideSell, nil
	default:
		return event.OrderSideUnknown, fmt.Errorf("unknown order side: %q", s)
	}
}

func kindFromWire(s string) (event.OrderKind, error) {
	switch s {
	case "limit", "":
		return event.OrderKindLimit, nil
	case "market":
		return event.OrderKindMarket, nil
	default:
		return event.OrderKindLimit, fmt.Errorf("unknown order kind: %q", s)
	}
}

func deleteReasonFromWire(s string) (event.DeleteReason, error) {
	switch s {
	case "cancel", "":
		return event.DeleteReasonCancel, nil
	case "out_of_corridor":
		return event.DeleteReasonOutOfCorridor, nil
	case "expired":
		return event.DeleteReasonExpired, nil
	case "margin_call":
		return event.DeleteReasonMarginCall, nil
	default:
		return event.DeleteReasonCancel, fmt.Errorf("unknown delete reason: %q", s)
	}
}

func deleteReasonToWire(r event.DeleteReason) string {
	switch r {
	case event.DeleteReasonOutOfCorridor:
		return "out_of_corridor"
	case event.DeleteReasonExpired:
		return "expired"
	case event.DeleteReasonMarginCall:
		return "margin_call"
	default:
		return "cancel"
	}
}
