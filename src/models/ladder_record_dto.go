package models

// LadderRecordDTO is the flattened CSV row used by the export tooling.
type LadderRecordDTO struct {
	LadderID          string  `csv:"ladder_id"`
	StockPrice        float64 `csv:"stock_price"`
	RiskFreeRate      float64 `csv:"risk_free_rate"`
	TimeToExpiry      float64 `csv:"time_to_expiry"`
	InterestComponent float64 `csv:"r_c"`
	Strike            float64 `csv:"strike"`
	CallPrice         float64 `csv:"call_price"`
	PutPrice          float64 `csv:"put_price"`
}

func NewLadderRecordDTOs(ladderID string, params MarketParams, ladder Ladder) []*LadderRecordDTO {
	records := make([]*LadderRecordDTO, 0, len(ladder.Rows))

	for _, row := range ladder.Rows {
		records = append(records, &LadderRecordDTO{
			LadderID:          ladderID,
			StockPrice:        params.StockPrice,
			RiskFreeRate:      params.RiskFreeRate,
			TimeToExpiry:      params.TimeToExpiry,
			InterestComponent: params.InterestComponent,
			Strike:            row.Strike,
			CallPrice:         row.CallPrice,
			PutPrice:          row.PutPrice,
		})
	}

	return records
}
