package queue

import (
	"time"

	"github.com/google/uuid"
)

// Queue names, one durable queue per observable ledger event.
const (
	DepositQueueName            = "ledger_deposit_queue"
	WithdrawQueueName           = "ledger_withdraw_queue"
	RewardsClaimedQueueName     = "ledger_rewards_claimed_queue"
	RewardsDistributedQueueName = "ledger_rewards_distributed_queue"
)

type DepositEvent struct {
	EventID       string `json:"event_id"`
	StakerAddress string `json:"staker_address"`
	Amount        uint64 `json:"amount"`
	TotalStake    uint64 `json:"total_stake"`
	Tick          uint64 `json:"tick"`
	Timestamp     int64  `json:"timestamp"`
}

type WithdrawEvent struct {
	EventID       string `json:"event_id"`
	StakerAddress string `json:"staker_address"`
	Amount        uint64 `json:"amount"`
	TotalStake    uint64 `json:"total_stake"`
	Tick          uint64 `json:"tick"`
	Timestamp     int64  `json:"timestamp"`
}

type RewardsClaimedEvent struct {
	EventID       string `json:"event_id"`
	StakerAddress string `json:"staker_address"`
	Amount        uint64 `json:"amount"`
	Tick          uint64 `json:"tick"`
	Timestamp     int64  `json:"timestamp"`
}

type RewardsDistributedEvent struct {
	EventID      string `json:"event_id"`
	AdminAddress string `json:"admin_address"`
	Processed    int    `json:"processed"`
	Tick         uint64 `json:"tick"`
	Timestamp    int64  `json:"timestamp"`
}

func NewDepositEvent(staker string, amount, totalStake, tick uint64) DepositEvent {
	return DepositEvent{
		EventID:       uuid.New().String(),
		StakerAddress: staker,
		Amount:        amount,
		TotalStake:    totalStake,
		Tick:          tick,
		Timestamp:     time.Now().Unix(),
	}
}

func NewWithdrawEvent(staker string, amount, totalStake, tick uint64) WithdrawEvent {
	return WithdrawEvent{
		EventID:       uuid.New().String(),
		StakerAddress: staker,
		Amount:        amount,
		TotalStake:    totalStake,
		Tick:          tick,
		Timestamp:     time.Now().Unix(),
	}
}

func NewRewardsClaimedEvent(staker string, amount, tick uint64) RewardsClaimedEvent {
	return RewardsClaimedEvent{
		EventID:       uuid.New().String(),
		StakerAddress: staker,
		Amount:        amount,
		Tick:          tick,
		Timestamp:     time.Now().Unix(),
	}
}

func NewRewardsDistributedEvent(admin string, processed int, tick uint64) RewardsDistributedEvent {
	return RewardsDistributedEvent{
		EventID:      uuid.New().String(),
		AdminAddress: admin,
		Processed:    processed,
		Tick:         tick,
		Timestamp:    time.Now().Unix(),
	}
}
