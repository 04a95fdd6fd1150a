package model

const SettlementJournalCollection = "settlement_journal"

// SettlementDocument is one entry of the append-only claim journal. The
// journal exists for external audits; the in-memory ledger never reads it.
type SettlementDocument struct {
	ID            string `bson:"_id"`
	StakerAddress string `bson:"staker_address"`
	Amount        uint64 `bson:"amount"`
	Tick          uint64 `bson:"tick"`
	CreatedAt     int64  `bson:"created_at"`
}
