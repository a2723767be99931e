package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCounter(t *testing.T) {
	registry := GetRegistry()
	counter := registry.GetCounter("jiwei_allocation_total")
	if counter == nil {
		t.Fatal("默认计数器应已注册")
	}

	counter.Inc("OPTIMAL")
	counter.Inc("OPTIMAL")
	counter.Add(3, "INFEASIBLE")

	counter.mu.RLock()
	defer counter.mu.RUnlock()
	if counter.values["OPTIMAL"] != 2 {
		t.Errorf("OPTIMAL 计数 = %f, expected 2", counter.values["OPTIMAL"])
	}
	if counter.values["INFEASIBLE"] != 3 {
		t.Errorf("INFEASIBLE 计数 = %f, expected 3", counter.values["INFEASIBLE"])
	}
}

func TestGauge(t *testing.T) {
	registry := GetRegistry()
	gauge := registry.GetGauge("jiwei_model_candidates")
	if gauge == nil {
		t.Fatal("默认仪表盘应已注册")
	}

	gauge.Set(42)
	gauge.Inc()
	gauge.Dec()

	gauge.mu.RLock()
	defer gauge.mu.RUnlock()
	if gauge.values[""] != 42 {
		t.Errorf("仪表盘值 = %f, expected 42", gauge.values[""])
	}
}

func TestHistogram_Observe(t *testing.T) {
	registry := GetRegistry()
	h := registry.NewHistogram("test_histogram", "测试直方图", []string{}, []float64{0.1, 1.0, 10.0})

	h.Observe(0.05) // 桶 0.1
	h.Observe(0.5)  // 桶 1.0
	h.Observe(100)  // +Inf 桶

	h.mu.RLock()
	defer h.mu.RUnlock()
	counts := h.counts[""]
	if counts[0] != 1 || counts[1] != 1 || counts[2] != 0 || counts[3] != 1 {
		t.Errorf("桶计数错误: %v", counts)
	}
	if h.sums[""] != 100.55 {
		t.Errorf("总和 = %f, expected 100.55", h.sums[""])
	}
}

func TestHandler_PrometheusFormat(t *testing.T) {
	RecordAllocation("OPTIMAL", 50*time.Millisecond, 12, 8)
	RecordRequestMetrics("POST", "/api/v1/allocation/solve", 200, 10*time.Millisecond)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	for _, metric := range []string{
		"jiwei_allocation_total",
		"jiwei_allocation_duration_seconds",
		"jiwei_http_requests_total",
		"jiwei_model_candidates",
	} {
		if !strings.Contains(body, metric) {
			t.Errorf("输出应包含指标 %s", metric)
		}
	}
	if !strings.Contains(body, "# TYPE jiwei_allocation_total counter") {
		t.Error("缺少 TYPE 注释")
	}
}
