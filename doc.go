// Package unitmarket is a toolkit for clearing unit-demand assignment
// markets: n goods, m bidders, each bidder buying at most one good.
//
// 🚀 What is inside?
//
//	• market/     – valuation matrices, allocations, reserve prices and priced
//	                matchings with welfare, revenue and envy diagnostics
//	• assignment/ – Hungarian maximum-weight bipartite matching
//	• maxweq/     – marginal-value (maximum Walrasian) pricing
//	• reserve/    – reserve prices through dummy bidders, five strategies
//	• evp/        – envy-free revenue search over candidate uniform reserves
//	• cmd/unitmarket – command-line driver over JSON market files
//
// ✨ Pipeline:
//
//	valuations ─▶ Hungarian ─▶ allocation
//	           └▶ marginal values w(V) − w(V₋ᵢ) ─▶ envy-free prices
//	           └▶ dummy columns at reserve r ─▶ prices ≥ r
//	           └▶ every winning value as r ─▶ best revenue
//
// Quick example:
//
//	v := market.MustValuationMatrix([][]float64{
//		{market.NoEdge, 62},
//		{96, 62},
//		{market.NoEdge, 62},
//	})
//	out, _ := evp.Approximate(v)
//	fmt.Println(out.SellerRevenue()) // 158
//
// Every algorithm is a pure function of its inputs; none keeps global state,
// so concurrent calls on shared read-only matrices are safe.
//
//	go get github.com/katalvlaran/unitmarket
package unitmarket
