package rules

import (
	"testing"

	"github.com/jiwei/jiwei/pkg/model"
)

func TestGetLibrary(t *testing.T) {
	library := GetLibrary()
	if len(library) == 0 {
		t.Fatal("模板库不应为空")
	}

	seen := make(map[string]bool)
	for _, tmpl := range library {
		if tmpl.Name == "" || tmpl.DisplayName == "" {
			t.Errorf("模板缺少名称: %+v", tmpl)
		}
		if seen[tmpl.Name] {
			t.Errorf("模板名重复: %s", tmpl.Name)
		}
		seen[tmpl.Name] = true

		if err := tmpl.WindowA.Validate(); err != nil {
			t.Errorf("模板 %s 的A侧窗口无效: %v", tmpl.Name, err)
		}
		if err := tmpl.WindowB.Validate(); err != nil {
			t.Errorf("模板 %s 的B侧窗口无效: %v", tmpl.Name, err)
		}
	}
}

func TestInstantiate(t *testing.T) {
	rule, err := Instantiate("pushback_separation", "r1", "1L", "1C")
	if err != nil {
		t.Fatalf("实例化失败: %v", err)
	}

	if rule.RuleID != "r1" || rule.StandA != "1L" || rule.StandB != "1C" {
		t.Errorf("规则字段错误: %+v", rule)
	}
	if rule.TimeConstraintA.StartAnchor != model.AnchorDeparture {
		t.Errorf("推出分离模板应锚定离场: %+v", rule.TimeConstraintA)
	}
	if err := rule.Validate(); err != nil {
		t.Errorf("实例化的规则应合法: %v", err)
	}
}

func TestInstantiate_MarsIdentity(t *testing.T) {
	rule, err := Instantiate("mars_pair_occupancy", "r1", "2L", "2C")
	if err != nil {
		t.Fatalf("实例化失败: %v", err)
	}

	if rule.TimeConstraintA != model.IdentityWindow() || rule.TimeConstraintB != model.IdentityWindow() {
		t.Error("MARS模板两侧应为恒等窗口")
	}
}

func TestInstantiate_UnknownTemplate(t *testing.T) {
	if _, err := Instantiate("no_such_template", "r1", "A", "B"); err == nil {
		t.Error("未知模板应返回错误")
	}
}
