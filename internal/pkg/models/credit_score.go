package models

import "time"

type CreditScore struct {
	Score       int            `bson:"score" json:"score"`
	MaxScore    int            `bson:"maxScore" json:"maxScore"`
	Factors     []CreditFactor `bson:"factors" json:"factors"`
	LastUpdated time.Time      `bson:"lastUpdated" json:"lastUpdated"`
}

type CreditFactor struct {
	Name        string  `bson:"name" json:"name"`
	Impact      string  `bson:"impact" json:"impact"`
	Description string  `bson:"description" json:"description"`
	Value       float64 `bson:"value" json:"value"`
}

// CreditTier is the risk band derived from a credit score. LTV is the ceiling
// permitted for the tier, APR the floor applied to its loans.
type CreditTier struct {
	Tier    string  `json:"tier"`
	LTV     float64 `json:"ltv"`
	APR     float64 `json:"apr"`
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	BgColor string  `json:"bgColor"`
}

// ScoreRange is the display descriptor for a score value.
type ScoreRange struct {
	Range       string `json:"range"`
	Description string `json:"description"`
	Color       string `json:"color"`
}
