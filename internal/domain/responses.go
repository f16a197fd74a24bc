package domain

import (
	"encoding/json"
	"math"
)

// StockoutDays is a day count that may be +Inf when a product has no sales
// data. JSON has no infinity literal, so +Inf marshals as null; the
// in-memory value is the one consumers of the Go API should inspect.
type StockoutDays float64

func (d StockoutDays) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(d), 1) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(d))
}

func (d *StockoutDays) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = StockoutDays(math.Inf(1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*d = StockoutDays(v)
	return nil
}

// Recommendation is the reorder advice for a single product.
type Recommendation struct {
	ProductID           string       `json:"productId"`
	ProductName         string       `json:"productName"`
	SKU                 string       `json:"sku"`
	CurrentStock        int          `json:"currentStock"`
	AvgDailySales       float64      `json:"avgDailySales"`
	DaysUntilStockout   StockoutDays `json:"daysUntilStockout"`
	Urgency             string       `json:"urgency"`
	Action              string       `json:"action"`
	RecommendedQuantity int          `json:"recommendedQuantity"`
	Performance         string       `json:"performance"`
	TotalRevenue        float64      `json:"totalRevenue"`
	Velocity            float64      `json:"velocity"`
}

// RecommendationSummary holds request-wide urgency tallies.
type RecommendationSummary struct {
	TotalProducts int    `json:"totalProducts"`
	HighUrgency   int    `json:"highUrgency"`
	MediumUrgency int    `json:"mediumUrgency"`
	LowUrgency    int    `json:"lowUrgency"`
	AnalysisDate  string `json:"analysisDate"`
}

// RecommendationReport is the full response of the recommendation operation.
type RecommendationReport struct {
	Recommendations []Recommendation      `json:"recommendations"`
	Summary         RecommendationSummary `json:"summary"`
}

// ForecastPoint is one predicted day of demand for a product.
type ForecastPoint struct {
	Date              string  `json:"date"`
	PredictedQuantity int     `json:"predictedQuantity"`
	PredictedRevenue  float64 `json:"predictedRevenue"`
}

// ProductForecast is the 30-day projection for a single product.
type ProductForecast struct {
	ProductID             string          `json:"productId"`
	ProductName           string          `json:"productName"`
	SKU                   string          `json:"sku"`
	Forecast              []ForecastPoint `json:"forecast"`
	TotalPredictedSales   int             `json:"totalPredictedSales"`
	TotalPredictedRevenue float64         `json:"totalPredictedRevenue"`
}

// ForecastReport is the full response of the forecast operation.
type ForecastReport struct {
	Forecasts   []ProductForecast `json:"forecasts"`
	GeneratedAt string            `json:"generatedAt"`
}

// ABCEntry is one product's position in the ABC revenue ranking.
type ABCEntry struct {
	ProductID         string  `json:"productId"`
	ProductName       string  `json:"productName"`
	SKU               string  `json:"sku"`
	Revenue           float64 `json:"revenue"`
	Quantity          int     `json:"quantity"`
	RevenuePercentage float64 `json:"revenuePercentage"`
	Category          string  `json:"category"`
	Description       string  `json:"description"`
}

// ABCSummary holds per-tier counts and the grand revenue total.
type ABCSummary struct {
	TotalProducts int     `json:"totalProducts"`
	CategoryA     int     `json:"categoryA"`
	CategoryB     int     `json:"categoryB"`
	CategoryC     int     `json:"categoryC"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AnalysisDate  string  `json:"analysisDate"`
}

// ABCReport is the full response of the ABC classification operation.
type ABCReport struct {
	Analysis []ABCEntry `json:"analysis"`
	Summary  ABCSummary `json:"summary"`
}

// OverallMetrics are catalog-wide totals for the analysis window.
type OverallMetrics struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalQuantitySold int     `json:"totalQuantitySold"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TotalStockValue   float64 `json:"totalStockValue"`
	NumberOfProducts  int     `json:"numberOfProducts"`
	AnalysisPeriod    string  `json:"analysisPeriod"`
}

// CategoryPerformance is a category's share of the window revenue.
type CategoryPerformance struct {
	CategoryID    string  `json:"categoryId"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalQuantity int     `json:"totalQuantity"`
	RevenueShare  float64 `json:"revenueShare"`
}

// TopProduct is one of the highest-revenue products in the window.
type TopProduct struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Revenue     float64 `json:"revenue"`
	Quantity    int     `json:"quantity"`
}

// PerformanceReport is the full response of the performance operation.
type PerformanceReport struct {
	OverallMetrics      OverallMetrics        `json:"overallMetrics"`
	CategoryPerformance []CategoryPerformance `json:"categoryPerformance"`
	TopProducts         []TopProduct          `json:"topProducts"`
	GeneratedAt         string                `json:"generatedAt"`
}

// Dashboard bundles all four analyses for a single request.
type Dashboard struct {
	Recommendations *RecommendationReport `json:"recommendations"`
	Forecast        *ForecastReport       `json:"forecast"`
	ABCAnalysis     *ABCReport            `json:"abcAnalysis"`
	Performance     *PerformanceReport    `json:"performance"`
	GeneratedAt     string                `json:"generatedAt"`
}
