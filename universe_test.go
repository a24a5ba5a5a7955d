package montecarlo

import "testing"

func TestNewAssetUniverse(t *testing.T) {
	testCases := []struct {
		name    string
		tickers []string
		wantErr bool
	}{
		{name: "ok", tickers: []string{"PETR4.SA", "WEGE3.SA", "BPAC11.SA", "VALE3.SA"}},
		{name: "single", tickers: []string{"AAPL.US"}},
		{name: "empty", tickers: nil, wantErr: true},
		{name: "duplicate", tickers: []string{"AAPL.US", "AAPL.US"}, wantErr: true},
		{name: "blank", tickers: []string{"AAPL.US", "  "}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := NewAssetUniverse(tc.tickers...)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewAssetUniverse(%v) error = %v, wantErr %v", tc.tickers, err, tc.wantErr)
			}
			if err == nil && u.N() != len(tc.tickers) {
				t.Errorf("N() = %d, want %d", u.N(), len(tc.tickers))
			}
		})
	}
}
