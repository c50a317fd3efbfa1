package models

// Prize is a redeemable catalog item. Prizes are managed administratively;
// this service only reads them and debits their cost on redemption.
type Prize struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Cost        int64  `db:"cost"`
	ImageURL    string `db:"image_url"`
	Available   bool   `db:"available"`
}

// RedemptionResult confirms a successful prize redemption.
type RedemptionResult struct {
	Prize            *Prize
	CoinRecordID     int64
	RemainingBalance int64
}
