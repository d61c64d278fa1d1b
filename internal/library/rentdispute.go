// Package library ships the built-in document types: their rule sets, seed
// clauses and answer validators. External rule sets and clause files can be
// loaded at runtime; this package is the curated baseline.
package library

import (
	"context"
	"fmt"

	"github.com/artiklo/legato/internal/clause"
	"github.com/artiklo/legato/internal/model"
)

// DocumentTypeRentDispute is the rent increase objection petition (tr-TR)
const DocumentTypeRentDispute = "kira_itiraz_dilekce"

// RentDisputeRuleSet returns the selection policy for the rent increase
// objection petition. Some rules reference clauses that ship later than the
// rule set; missing ids degrade into assembly warnings rather than failures.
func RentDisputeRuleSet() *model.RuleSet {
	return &model.RuleSet{
		DocumentType: DocumentTypeRentDispute,
		Rules: []model.Rule{
			{
				ID:          "INCLUDE_HEADER",
				Description: "Dilekçe başlığı her zaman dahil edilir",
				Conditions: []model.Condition{
					{Field: "document_type", Operator: model.OpEqual, Value: model.String("kira_itiraz")},
				},
				ThenClauses: []string{"HEADER_RENT_DISPUTE_TR_v1"},
				Priority:    1,
			},
			{
				ID:          "INCLUDE_PARTY_INFO",
				Description: "Davacı ve davalı bilgileri her zaman dahil",
				Conditions: []model.Condition{
					{Field: "kiraci_ad_soyad", Operator: model.OpNotEqual, Value: model.String("")},
				},
				ThenClauses: []string{"PLAINTIFF_INFO_TR_v1", "DEFENDANT_INFO_TR_v1"},
				Priority:    2,
			},
			{
				ID:          "INCLUDE_BASIC_INFO",
				Description: "Mülk ve sözleşme bilgileri temel gereksinimler",
				Conditions: []model.Condition{
					{Field: "mulk_adres", Operator: model.OpNotEqual, Value: model.String("")},
				},
				ThenClauses: []string{"PROPERTY_DETAILS_TR_v1", "CONTRACT_INFO_TR_v1", "RENT_INCREASE_DETAILS_TR_v1"},
				Priority:    3,
			},
			{
				ID:          "HIGH_INCREASE_OBJECTION",
				Description: "%25'ten fazla artırım için güçlü itiraz",
				Conditions: []model.Condition{
					{Field: "artirim_orani", Operator: model.OpGreater, Value: model.Number(25)},
				},
				ThenClauses: []string{"HIGH_INCREASE_OBJECTION_TR_v1"},
				ElseClauses: []string{},
				Priority:    4,
			},
			{
				ID:          "MODERATE_INCREASE_OBJECTION",
				Description: "%10-25 arası artırım için orta seviye itiraz",
				Conditions: []model.Condition{
					{Field: "artirim_orani", Operator: model.OpGreater, Value: model.Number(10)},
					{Field: "artirim_orani", Operator: model.OpLess, Value: model.Number(25)},
				},
				ThenClauses: []string{"MODERATE_INCREASE_OBJECTION_TR_v1"},
				Priority:    5,
			},
			{
				ID:          "INCLUDE_COUNTER_OFFER",
				Description: "Karşı öneri varsa dahil et",
				Conditions: []model.Condition{
					{Field: "karsi_oneri_var", Operator: model.OpEqual, Value: model.Bool(true)},
					{Field: "onerilen_kira_bedeli", Operator: model.OpNotEqual, Value: model.String("")},
				},
				ThenClauses: []string{"COUNTER_OFFER_TR_v1"},
				Priority:    6,
			},
			{
				ID:          "FULL_REJECTION_REQUEST",
				Description: "Kira artırımının tamamen reddedilmesi talebi",
				Conditions: []model.Condition{
					{Field: "itiraz_turu", Operator: model.OpEqual, Value: model.String("tam_ret")},
				},
				ThenClauses: []string{"REQUEST_INCREASE_REJECTION_TR_v1"},
				Priority:    7,
			},
			{
				ID:          "COUNTER_OFFER_REQUEST",
				Description: "Karşı öneri ile talep",
				Conditions: []model.Condition{
					{Field: "itiraz_turu", Operator: model.OpEqual, Value: model.String("karsi_oneri")},
				},
				ThenClauses: []string{"REQUEST_WITH_COUNTER_OFFER_TR_v1"},
				Priority:    7,
			},
			{
				ID:          "INCLUDE_SIGNATURE",
				Description: "İmza bölümü her zaman en son dahil edilir",
				Conditions: []model.Condition{
					{Field: "kiraci_ad_soyad", Operator: model.OpNotEqual, Value: model.String("")},
				},
				ThenClauses: []string{"SIGNATURE_SECTION_TR_v1"},
				Priority:    8,
			},
			{
				ID:          "ECONOMIC_HARDSHIP",
				Description: "Ekonomik zorluk durumunda ek itiraz",
				Conditions: []model.Condition{
					{Field: "ekonomik_durum", Operator: model.OpEqual, Value: model.String("zor")},
					{Field: "artirim_orani", Operator: model.OpGreater, Value: model.Number(15)},
				},
				ThenClauses: []string{"ECONOMIC_HARDSHIP_OBJECTION_TR_v1"},
				Priority:    9,
			},
			{
				ID:          "PROPERTY_CONDITION",
				Description: "Mülk durumu kötüyse ek itiraz",
				Conditions: []model.Condition{
					{Field: "mulk_durumu", Operator: model.OpEqual, Value: model.String("kotu")},
				},
				ThenClauses: []string{"PROPERTY_CONDITION_OBJECTION_TR_v1"},
				Priority:    10,
			},
			{
				ID:          "MARKET_ANALYSIS",
				Description: "Piyasa analizi varsa dahil et",
				Conditions: []model.Condition{
					{Field: "piyasa_analizi_var", Operator: model.OpEqual, Value: model.Bool(true)},
				},
				ThenClauses: []string{"MARKET_ANALYSIS_CLAUSE_TR_v1"},
				Priority:    11,
			},
			{
				ID:          "INVALID_REASONING",
				Description: "Ev sahibinin gerekçesi geçersiz ise itiraz",
				Conditions: []model.Condition{
					{Field: "artirim_gerekce_gecerli", Operator: model.OpEqual, Value: model.Bool(false)},
				},
				ThenClauses: []string{"INVALID_REASONING_OBJECTION_TR_v1"},
				Priority:    12,
			},
			{
				ID:          "LEGAL_DEADLINE_CHECK",
				Description: "Yasal süre kontrolü",
				Conditions: []model.Condition{
					{Field: "yasal_sure_asimi", Operator: model.OpEqual, Value: model.Bool(true)},
				},
				ThenClauses: []string{"LEGAL_DEADLINE_OBJECTION_TR_v1"},
				Priority:    13,
			},
			{
				ID:          "LONG_TERM_TENANT",
				Description: "Uzun süreli kiracı için ek vurgu",
				Conditions: []model.Condition{
					{Field: "kira_suresi_yil", Operator: model.OpGreater, Value: model.Number(3)},
				},
				ThenClauses: []string{"LONG_TERM_TENANT_CLAUSE_TR_v1"},
				Priority:    14,
			},
		},
		Metadata: &model.RuleSetMetadata{
			CreatedBy: "legal_expert_1",
			CreatedAt: "2024-01-15T10:00:00Z",
			Version:   "1.0.0",
		},
	}
}

// RentDisputeClauses returns the seed clause library for the rent increase
// objection petition.
func RentDisputeClauses() []*model.Clause {
	return []*model.Clause{
		{
			ID:       "HEADER_RENT_DISPUTE_TR_v1",
			Name:     "Kira İtiraz Dilekçesi Başlığı",
			Category: model.CategoryRentObjection,
			Body: `T.C.
{MAHKEME_ADI}
{DOSYA_NO}

KIRA ARTIRIMI İTİRAZI

Sayın Hakimim,`,
			Description:       "Kira itiraz dilekçesi başlığı ve mahkeme bilgileri",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"6098 sayılı Türk Borçlar Kanunu", "TBK m. 344"},
			LegalReferences:   []string{"TBK m. 344", "HMK m. 119"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"MAHKEME_ADI", "DOSYA_NO"},
		},
		{
			ID:       "PLAINTIFF_INFO_TR_v1",
			Name:     "Davacı (Kiracı) Bilgileri",
			Category: model.CategoryRentGeneral,
			Body: `DAVACI:
Ad Soyad: {KIRACI_AD_SOYAD}
T.C. Kimlik No: {KIRACI_TC}
Adres: {KIRACI_ADRES}
Telefon: {KIRACI_TELEFON}
E-posta: {KIRACI_EMAIL}`,
			Description:       "Kiracı (davacı) temel bilgileri",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"HMK m. 119"},
			LegalReferences:   []string{"HMK m. 119", "HMK m. 120"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"KIRACI_AD_SOYAD", "KIRACI_TC", "KIRACI_ADRES"},
			OptionalVariables: []string{"KIRACI_TELEFON", "KIRACI_EMAIL"},
		},
		{
			ID:       "DEFENDANT_INFO_TR_v1",
			Name:     "Davalı (Ev Sahibi) Bilgileri",
			Category: model.CategoryRentGeneral,
			Body: `DAVALI:
Ad Soyad: {EV_SAHIBI_AD_SOYAD}
T.C. Kimlik No: {EV_SAHIBI_TC}
Adres: {EV_SAHIBI_ADRES}
Telefon: {EV_SAHIBI_TELEFON}`,
			Description:       "Ev sahibi (davalı) temel bilgileri",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"HMK m. 119"},
			LegalReferences:   []string{"HMK m. 119", "HMK m. 120"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"EV_SAHIBI_AD_SOYAD", "EV_SAHIBI_ADRES"},
			OptionalVariables: []string{"EV_SAHIBI_TC", "EV_SAHIBI_TELEFON"},
		},
		{
			ID:       "PROPERTY_DETAILS_TR_v1",
			Name:     "Kiralanan Mülk Detayları",
			Category: model.CategoryRentGeneral,
			Body: `UYUŞMAZLIK KONUSU TAŞINMAZ:
Adres: {MULK_ADRES}
İl/İlçe: {MULK_IL_ILCE}
Mahalle/Semt: {MULK_MAHALLE}
Daire No: {MULK_DAIRE_NO}
Brüt/Net m²: {MULK_METREKARE}
Kat: {MULK_KAT}
Oda Sayısı: {MULK_ODA_SAYISI}`,
			Description:       "Kiralanan taşınmazın detaylı bilgileri",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"TBK m. 299", "TBK m. 344"},
			LegalReferences:   []string{"TBK m. 299", "TBK m. 344"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"MULK_ADRES", "MULK_IL_ILCE"},
			OptionalVariables: []string{"MULK_MAHALLE", "MULK_DAIRE_NO", "MULK_METREKARE", "MULK_KAT", "MULK_ODA_SAYISI"},
		},
		{
			ID:       "CONTRACT_INFO_TR_v1",
			Name:     "Kira Sözleşmesi Bilgileri",
			Category: model.CategoryRentGeneral,
			Body: `KIRA SÖZLEŞMESİ BİLGİLERİ:
Sözleşme Tarihi: {SOZLESME_TARIHI}
Başlangıç Tarihi: {KIRA_BASLANGIC_TARIHI}
İlk Kira Bedeli: {ILK_KIRA_BEDELI} TL
Mevcut Kira Bedeli: {MEVCUT_KIRA_BEDELI} TL
Depozito: {DEPOZITO_MIKTARI} TL
Süre: {SOZLESME_SURESI}`,
			Description:       "Kira sözleşmesine ait temel bilgiler",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"TBK m. 299", "TBK m. 344"},
			LegalReferences:   []string{"TBK m. 299", "TBK m. 344", "TBK m. 347"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"SOZLESME_TARIHI", "ILK_KIRA_BEDELI", "MEVCUT_KIRA_BEDELI"},
			OptionalVariables: []string{"KIRA_BASLANGIC_TARIHI", "DEPOZITO_MIKTARI", "SOZLESME_SURESI"},
		},
		{
			ID:       "RENT_INCREASE_DETAILS_TR_v1",
			Name:     "Kira Artırımı Detayları",
			Category: model.CategoryRentIncrease,
			Body: `KIRA ARTIRIMI BİLGİLERİ:
Artırım Talebi Tarihi: {ARTIRIM_TALEP_TARIHI}
Eski Kira Bedeli: {ESKI_KIRA_BEDELI} TL
Talep Edilen Yeni Kira: {YENI_KIRA_TALEBI} TL
Artırım Oranı: %{ARTIRIM_ORANI}
Artırım Gerekçesi: {ARTIRIM_GEREKCE}`,
			Description:       "Ev sahibinin kira artırım talebine ait detaylar",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"TBK m. 344"},
			LegalReferences:   []string{"TBK m. 344", "TBK m. 347"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"ARTIRIM_TALEP_TARIHI", "ESKI_KIRA_BEDELI", "YENI_KIRA_TALEBI", "ARTIRIM_ORANI"},
			OptionalVariables: []string{"ARTIRIM_GEREKCE"},
		},
		{
			ID:       "HIGH_INCREASE_OBJECTION_TR_v1",
			Name:     "Yüksek Artırım İtirazı",
			Category: model.CategoryRentObjection,
			Body: `HUKUKSAL DAYANAK VE İTİRAZ GEREKÇESİ:

1. Türk Borçlar Kanunu'nun 344. maddesi uyarınca, "Kira bedeli, taşınmazın bulunduğu yerdeki benzer taşınmazların kira bedellerine göre belirlenir."

2. Davalının talep ettiği %{ARTIRIM_ORANI} oranındaki artırım, hem yasal sınırları aşmaktadır hem de bölgedeki benzer taşınmazların kira bedelleriyle uyumlu değildir.

3. {YENI_KIRA_TALEBI} TL'lik yeni kira bedeli, taşınmazın mevcut durumu, konumu ve bölgedeki piyasa koşulları dikkate alındığında fahiş nitelikte olup, ölçülülük ilkesine aykırıdır.`,
			Description:       "Yüksek kira artırımına karşı hukuki itiraz",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"TBK m. 344"},
			LegalReferences:   []string{"TBK m. 344", "TBK m. 2", "TMK m. 2"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"ARTIRIM_ORANI", "YENI_KIRA_TALEBI"},
			DisplayConditions: []model.Condition{
				{Field: "artirim_orani", Operator: model.OpGreater, Value: model.Number(25)},
			},
		},
		{
			ID:       "MODERATE_INCREASE_OBJECTION_TR_v1",
			Name:     "Orta Seviye Artırım İtirazı",
			Category: model.CategoryRentObjection,
			Body: `HUKUKSAL DAYANAK VE İTİRAZ GEREKÇESİ:

1. 6098 sayılı Türk Borçlar Kanunu'nun 344. maddesi uyarınca kira bedeli artırımı, objektif kriterlere dayanmalıdır.

2. %{ARTIRIM_ORANI} oranındaki artırım talebi, bölgedeki benzer nitelikteki taşınmazların kira bedelleri ve mevcut ekonomik koşullar göz önüne alındığında makul seviyenin üstündedir.

3. Taşınmazın mevcut durumu, yapılan iyileştirmeler ve piyasa koşulları değerlendirildiğinde, adil kira bedeli {ONERILEN_KIRA_BEDELI} TL'yi geçmemelidir.`,
			Description:       "Orta seviye kira artırımına karşı hukuki itiraz",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"TBK m. 344"},
			LegalReferences:   []string{"TBK m. 344", "TBK m. 2"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"ARTIRIM_ORANI"},
			OptionalVariables: []string{"ONERILEN_KIRA_BEDELI"},
			DisplayConditions: []model.Condition{
				{Field: "artirim_orani", Operator: model.OpGreater, Value: model.Number(10)},
				{Field: "artirim_orani", Operator: model.OpLess, Value: model.Number(25)},
			},
		},
		{
			ID:       "COUNTER_OFFER_TR_v1",
			Name:     "Karşı Kira Önerisi",
			Category: model.CategoryRentIncrease,
			Body: `KARŞI ÖNERİ:

Yukarıda belirtilen gerekçeler doğrultusunda, taşınmazın adil kira bedeli olarak aylık {ONERILEN_KIRA_BEDELI} TL önerilmektedir. Bu bedel:

- Bölgedeki benzer taşınmazların kira bedelleriyle uyumludur
- Taşınmazın mevcut durumu ve özelliklerini yansıtır
- Ekonomik koşullar ve enflasyon oranı dikkate alınarak belirlenmiştir
- Hakkaniyet ve ölçülülük ilkelerine uygundur`,
			Description:       "Kiracının karşı kira bedeli önerisi",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"TBK m. 344"},
			LegalReferences:   []string{"TBK m. 344"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"ONERILEN_KIRA_BEDELI"},
			DisplayConditions: []model.Condition{
				{Field: "karsi_oneri_var", Operator: model.OpEqual, Value: model.Bool(true)},
			},
		},
		{
			ID:       "REQUEST_INCREASE_REJECTION_TR_v1",
			Name:     "Artırım Reddi Talebi",
			Category: model.CategoryRentObjection,
			Body: `TALEP:

Yukarıda açıklanan gerekçeler doğrultusunda;

1. Davalının kira artırım talebinin REDDİNE,
2. Kira bedelinin mevcut {MEVCUT_KIRA_BEDELI} TL olarak devamına,
3. Yargılama giderleri ve vekalet ücretinin davalıdan tahsiline,

Karar verilmesini saygılarımızla arz ederiz.`,
			Description:       "Kira artırımının tamamen reddedilmesi talebi",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"TBK m. 344", "HMK m. 119"},
			LegalReferences:   []string{"TBK m. 344", "HMK m. 119", "HMK m. 326"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"MEVCUT_KIRA_BEDELI"},
			DisplayConditions: []model.Condition{
				{Field: "itiraz_turu", Operator: model.OpEqual, Value: model.String("tam_ret")},
			},
		},
		{
			ID:       "REQUEST_WITH_COUNTER_OFFER_TR_v1",
			Name:     "Karşı Öneri ile Talep",
			Category: model.CategoryRentObjection,
			Body: `TALEP:

Yukarıda açıklanan gerekçeler doğrultusunda;

1. Davalının fahiş kira artırım talebinin REDDİNE,
2. Taşınmazın adil kira bedelinin aylık {ONERILEN_KIRA_BEDELI} TL olarak TESPİTİNE,
3. Bu bedelin {ARTIRIM_TALEP_TARIHI} tarihinden itibaren geçerli olmasına,
4. Yargılama giderleri ve vekalet ücretinin davalıdan tahsiline,

Karar verilmesini saygılarımızla arz ederiz.`,
			Description:       "Kira artırımına karşı öneri ile talep",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"TBK m. 344", "HMK m. 119"},
			LegalReferences:   []string{"TBK m. 344", "HMK m. 119", "HMK m. 326"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition},
			RequiredVariables: []string{"ONERILEN_KIRA_BEDELI", "ARTIRIM_TALEP_TARIHI"},
			DisplayConditions: []model.Condition{
				{Field: "itiraz_turu", Operator: model.OpEqual, Value: model.String("karsi_oneri")},
			},
		},
		{
			ID:       "SIGNATURE_SECTION_TR_v1",
			Name:     "İmza ve Tarih Bölümü",
			Category: model.CategorySignature,
			Body: `

Tarih: {DILEKCE_TARIHI}


                                    {KIRACI_AD_SOYAD}
                                        (Davacı)

Ekler:
1. Kira sözleşmesi sureti
2. Kira artırım bildirimi
3. Bölge araştırması (varsa)
4. Diğer belgeler`,
			Description:       "Dilekçe imza ve ek belgeler bölümü",
			Jurisdiction:      "TR",
			LegalBasis:        []string{"HMK m. 119", "HMK m. 120"},
			LegalReferences:   []string{"HMK m. 119", "HMK m. 120"},
			Version:           "v1.0",
			Active:            true,
			CreatedBy:         "legal_expert_1",
			UsageContexts:     []model.UsageContext{model.ContextRentDisputePetition, model.ContextGeneralPetition},
			RequiredVariables: []string{"DILEKCE_TARIHI", "KIRACI_AD_SOYAD"},
		},
	}
}

// rentDisputeRequiredFields are the answers a petition cannot do without
var rentDisputeRequiredFields = []string{
	"kiraci_ad_soyad",
	"kiraci_tc",
	"kiraci_adres",
	"ev_sahibi_ad_soyad",
	"ev_sahibi_adres",
	"mulk_adres",
	"mulk_il_ilce",
	"sozlesme_tarihi",
	"ilk_kira_bedeli",
	"mevcut_kira_bedeli",
	"artirim_talep_tarihi",
	"eski_kira_bedeli",
	"yeni_kira_talebi",
	"artirim_orani",
	"itiraz_turu",
}

// ValidateRentDisputeAnswers checks an answer set before generation. Missing
// fields make it invalid; warnings flag suspicious but legal inputs.
func ValidateRentDisputeAnswers(answers model.AnswerSet) model.AnswerValidation {
	v := model.AnswerValidation{
		MissingFields: []string{},
		Warnings:      []string{},
	}

	for _, field := range rentDisputeRequiredFields {
		if !answers[field].Truthy() {
			v.MissingFields = append(v.MissingFields, field)
		}
	}

	if val, ok := answers["artirim_orani"]; ok {
		if rate, numeric := val.Number(); numeric {
			if rate < 5 && rate > 0 {
				v.Warnings = append(v.Warnings, "Artırım oranı çok düşük - itiraz gerekli olmayabilir")
			}
			if rate > 50 {
				v.Warnings = append(v.Warnings, "Artırım oranı çok yüksek - ek hukuki destek önerilir")
			}
		}
	}

	if answers["itiraz_turu"].String() == "karsi_oneri" && !answers["onerilen_kira_bedeli"].Truthy() {
		v.MissingFields = append(v.MissingFields, "onerilen_kira_bedeli")
	}

	v.Valid = len(v.MissingFields) == 0
	return v
}

// Covers reports whether the built-in library has clauses for a usage context
func Covers(usage model.UsageContext) bool {
	for _, c := range RentDisputeClauses() {
		if c.UsedIn(usage) {
			return true
		}
	}
	return false
}

// Seed imports the built-in clause library into a repository
func Seed(ctx context.Context, repo clause.Repository) (int, error) {
	count, err := repo.BulkImport(ctx, RentDisputeClauses())
	if err != nil {
		return count, fmt.Errorf("seed rent dispute clauses: %w", err)
	}
	return count, nil
}
