package domain

// Record is the structured financial snapshot for one identity.
// Adapters return it as a value copy; analyzers never mutate it.
type Record struct {
	ID                   string  `json:"id"`
	AnnualIncome         float64 `json:"annual_income"`
	DebtLevel            float64 `json:"debt_level"`
	RiskTolerance        string  `json:"risk_tolerance"`
	Volatility           float64 `json:"volatility"`
	PortfolioDiversity   float64 `json:"portfolio_diversity_score"`
	HealthStatus         string  `json:"health_status"`
	Country              string  `json:"country"`
	TransactionAmount    float64 `json:"transaction_amount"`
	SuspiciousFlag       bool    `json:"suspicious_flag"`
	AnomalyScore         float64 `json:"anomaly_score"`
	GeoLocation          string  `json:"geo_location"`
	CurrentSavings       float64 `json:"current_savings"`
	Age                  int     `json:"age"`
	RetirementAgeGoal    int     `json:"retirement_age_goal"`
	ContributionAmount   float64 `json:"contribution_amount"`
	EmployerContribution float64 `json:"employer_contribution"`
	PensionType          string  `json:"pension_type"`
	AnnualReturnRate     float64 `json:"annual_return_rate"`
}
