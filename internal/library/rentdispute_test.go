package library

import (
	"context"
	"testing"

	"github.com/artiklo/legato/internal/clause"
	"github.com/artiklo/legato/internal/model"
	"github.com/artiklo/legato/internal/rule"
)

func validAnswers() model.AnswerSet {
	return model.AnswerSet{
		"kiraci_ad_soyad":      model.String("Ahmet Yılmaz"),
		"kiraci_tc":            model.String("12345678901"),
		"kiraci_adres":         model.String("Kadıköy, İstanbul"),
		"ev_sahibi_ad_soyad":   model.String("Mehmet Demir"),
		"ev_sahibi_adres":      model.String("Beşiktaş, İstanbul"),
		"mulk_adres":           model.String("Kadıköy Mah. Test Sk. No:5"),
		"mulk_il_ilce":         model.String("İstanbul/Kadıköy"),
		"sozlesme_tarihi":      model.String("15.01.2023"),
		"ilk_kira_bedeli":      model.Number(3000),
		"mevcut_kira_bedeli":   model.Number(3000),
		"artirim_talep_tarihi": model.String("15.01.2024"),
		"eski_kira_bedeli":     model.Number(3000),
		"yeni_kira_talebi":     model.Number(4200),
		"artirim_orani":        model.Number(40),
		"itiraz_turu":          model.String("tam_ret"),
	}
}

func TestValidateRentDisputeAnswers_Valid(t *testing.T) {
	v := ValidateRentDisputeAnswers(validAnswers())
	if !v.Valid {
		t.Fatalf("Expected valid, missing = %v", v.MissingFields)
	}
	if len(v.Warnings) != 0 {
		t.Errorf("Expected no warnings at 40%%, got %v", v.Warnings)
	}
}

func TestValidateRentDisputeAnswers_EmptySet(t *testing.T) {
	v := ValidateRentDisputeAnswers(model.AnswerSet{})
	if v.Valid {
		t.Fatal("Expected invalid for empty answers")
	}
	if len(v.MissingFields) != len(rentDisputeRequiredFields) {
		t.Errorf("Expected %d missing fields, got %d", len(rentDisputeRequiredFields), len(v.MissingFields))
	}
}

func TestValidateRentDisputeAnswers_RateWarnings(t *testing.T) {
	low := validAnswers()
	low["artirim_orani"] = model.Number(3)
	if v := ValidateRentDisputeAnswers(low); len(v.Warnings) != 1 {
		t.Errorf("Expected a low-rate warning, got %v", v.Warnings)
	}

	high := validAnswers()
	high["artirim_orani"] = model.Number(80)
	if v := ValidateRentDisputeAnswers(high); len(v.Warnings) != 1 {
		t.Errorf("Expected a high-rate warning, got %v", v.Warnings)
	}
}

func TestValidateRentDisputeAnswers_CounterOfferNeedsAmount(t *testing.T) {
	answers := validAnswers()
	answers["itiraz_turu"] = model.String("karsi_oneri")

	v := ValidateRentDisputeAnswers(answers)
	if v.Valid {
		t.Fatal("Expected invalid without a proposed rent amount")
	}
	if len(v.MissingFields) != 1 || v.MissingFields[0] != "onerilen_kira_bedeli" {
		t.Errorf("MissingFields = %v, want [onerilen_kira_bedeli]", v.MissingFields)
	}

	answers["onerilen_kira_bedeli"] = model.Number(3500)
	if v := ValidateRentDisputeAnswers(answers); !v.Valid {
		t.Errorf("Expected valid with amount, missing = %v", v.MissingFields)
	}
}

func TestRentDisputeRuleSet_PassesValidation(t *testing.T) {
	validation := rule.NewEngine().ValidateRuleSet(RentDisputeRuleSet())
	if !validation.Valid {
		t.Errorf("Expected clean rule set, got %v", validation.Errors)
	}
}

func TestSeed_ImportsFullLibrary(t *testing.T) {
	store := clause.NewMemoryStore()
	count, err := Seed(context.Background(), store)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if count != len(RentDisputeClauses()) {
		t.Errorf("Expected %d clauses imported, got %d", len(RentDisputeClauses()), count)
	}

	// Every clause a rule can select must exist in the library
	known := make(map[string]bool)
	for _, c := range RentDisputeClauses() {
		known[c.ID] = true
	}
	for _, r := range RentDisputeRuleSet().Rules {
		for _, id := range append(append([]string{}, r.ThenClauses...), r.ElseClauses...) {
			if !known[id] {
				t.Errorf("Rule %s references unknown clause %s", r.ID, id)
			}
		}
	}
}
