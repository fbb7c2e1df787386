package datasets

import (
	"math"
	"reflect"
	"testing"
)

const stockHeader = "idoriglumped,regionfao,speciescat,speciescatname,marginalcost,beta,g,eqfvfmey,fvfmsy,pctredfmey,pctredfmsy,weight\n"

func TestLoadStocks(t *testing.T) {
	path := writeTempCSV(t, "stocks.csv", stockHeader+
		"10001,61 67,36,Tunas,1.8,1.3,0.4,1.6,1.4,35.0,20.0,0.7\n"+
		"10002,\"71,77\",37,Billfishes,NA,1.3,0.5,-Inf,1.1,-4.0,150.0,\n")

	stocks, err := LoadStocks(path)
	if err != nil {
		t.Fatalf("LoadStocks() error = %v", err)
	}
	if len(stocks) != 2 {
		t.Fatalf("LoadStocks() returned %d records, expected 2", len(stocks))
	}

	first := stocks[0]
	if first.ID != "10001" {
		t.Errorf("ID = %q, expected 10001", first.ID)
	}
	if !reflect.DeepEqual(first.Regions, []string{"61", "67"}) {
		t.Errorf("Regions = %v, expected [61 67]", first.Regions)
	}
	if first.ReductionMEY != 0.35 || first.ReductionMSY != 0.20 {
		t.Errorf("reductions = %v/%v, expected 0.35/0.20", first.ReductionMEY, first.ReductionMSY)
	}
	if first.Weight != 0.7 {
		t.Errorf("Weight = %v, expected 0.7", first.Weight)
	}

	second := stocks[1]
	if !reflect.DeepEqual(second.Regions, []string{"71", "77"}) {
		t.Errorf("Regions = %v, expected [71 77]", second.Regions)
	}
	// NA cost stays undefined rather than becoming zero.
	if !math.IsNaN(second.MarginalCost) {
		t.Errorf("MarginalCost = %v, expected NaN", second.MarginalCost)
	}
	// A ratio that parsed to -Inf is normalized to undefined.
	if !math.IsNaN(second.MEYRatio) {
		t.Errorf("MEYRatio = %v, expected NaN for -Inf input", second.MEYRatio)
	}
	// Negative percentage clamps to 0, over-100 clamps to 1.
	if second.ReductionMEY != 0 {
		t.Errorf("ReductionMEY = %v, expected 0 for negative input", second.ReductionMEY)
	}
	if second.ReductionMSY != 1 {
		t.Errorf("ReductionMSY = %v, expected 1 for 150%% input", second.ReductionMSY)
	}
	// Missing weight falls back to the default.
	if second.Weight != 1 {
		t.Errorf("Weight = %v, expected default 1", second.Weight)
	}
}

func TestLoadStocksErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "Missing required column",
			contents: "idoriglumped,regionfao\n10001,61\n",
		},
		{
			name:     "Empty stock identifier",
			contents: stockHeader + ",61,36,Tunas,1.8,1.3,0.4,1.6,1.4,35.0,20.0,1\n",
		},
		{
			name:     "Malformed cost",
			contents: stockHeader + "10001,61,36,Tunas,cheap,1.3,0.4,1.6,1.4,35.0,20.0,1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, "stocks.csv", tt.contents)
			if _, err := LoadStocks(path); err == nil {
				t.Error("LoadStocks() expected error, got nil")
			}
		})
	}
}

func TestSplitRegions(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "Single code", raw: "61", expected: []string{"61"}},
		{name: "Space separated", raw: "61 67 71", expected: []string{"61", "67", "71"}},
		{name: "Comma separated", raw: "61,67", expected: []string{"61", "67"}},
		{name: "Mixed separators", raw: "61, 67;71", expected: []string{"61", "67", "71"}},
		{name: "Empty", raw: "", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitRegions(tt.raw); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitRegions(%q) = %v, expected %v", tt.raw, got, tt.expected)
			}
		})
	}
}
