// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package i18n

import "slices"

// Key identifies a translated string.
type Key string

// Layout and navigation.
const (
	KeySiteTitle       Key = "site_title"
	KeySiteDescription Key = "site_description"
	KeyNavHome         Key = "nav_home"
	KeyNavServices     Key = "nav_services"
	KeyNavCases        Key = "nav_cases"
	KeyNavBlog         Key = "nav_blog"
	KeyNavContacts     Key = "nav_contacts"
	KeyLanguage        Key = "language"
	KeyLangRU          Key = "lang_ru"
	KeyLangKZ          Key = "lang_kz"
	KeyLangEN          Key = "lang_en"
)

// Home page sections.
const (
	KeyHeroTitle        Key = "hero_title"
	KeyHeroSubtitle     Key = "hero_subtitle"
	KeyHeroDescription  Key = "hero_description"
	KeyHeroCTAPrimary   Key = "hero_cta_primary"
	KeyHeroCTASecondary Key = "hero_cta_secondary"

	KeyKPITitle       Key = "kpi_title"
	KeyKPISubtitle    Key = "kpi_subtitle"
	KeyKPIClients     Key = "kpi_clients"
	KeyKPIProjects    Key = "kpi_projects"
	KeyKPIExperience  Key = "kpi_experience"
	KeyKPISpecialists Key = "kpi_specialists"

	KeyServicesTitle           Key = "services_title"
	KeyServicesSubtitle        Key = "services_subtitle"
	KeyServicesExplore         Key = "services_explore"
	KeyServiceDigital          Key = "service_digital"
	KeyServiceDigitalDesc      Key = "service_digital_desc"
	KeyServiceCommunication    Key = "service_communication"
	KeyServiceCommunicationDsc Key = "service_communication_desc"
	KeyServiceResearch         Key = "service_research"
	KeyServiceResearchDesc     Key = "service_research_desc"
	KeyServiceTech             Key = "service_tech"
	KeyServiceTechDesc         Key = "service_tech_desc"

	KeyCasesTitle    Key = "cases_title"
	KeyCasesSubtitle Key = "cases_subtitle"
	KeyCasesViewAll  Key = "cases_view_all"
	KeyCasesResult   Key = "cases_result"
	KeyCasesViewCase Key = "cases_view_case"
	KeyCasesPrev     Key = "cases_prev"
	KeyCasesNext     Key = "cases_next"

	KeyCTATitle    Key = "cta_title"
	KeyCTASubtitle Key = "cta_subtitle"
	KeyCTAButton   Key = "cta_button"
	KeyCTAFeature1 Key = "cta_feature_1"
	KeyCTAFeature2 Key = "cta_feature_2"
	KeyCTAFeature3 Key = "cta_feature_3"
)

// Services page.
const (
	KeyServicesPageTitle    Key = "services_page_title"
	KeyServicesPageSubtitle Key = "services_page_subtitle"
	KeyServicesIncludes     Key = "services_includes"
	KeyServiceDigitalFull   Key = "service_digital_full"
	KeyServiceCommFull      Key = "service_communication_full"
	KeyServiceResearchFull  Key = "service_research_full"
	KeyServiceTechFull      Key = "service_tech_full"

	KeyItemSMM         Key = "item_smm"
	KeyItemSEO         Key = "item_seo"
	KeyItemPPC         Key = "item_ppc"
	KeyItemAnalytics   Key = "item_analytics"
	KeyItemBranding    Key = "item_branding"
	KeyItemContent     Key = "item_content"
	KeyItemPR          Key = "item_pr"
	KeyItemEvents      Key = "item_events"
	KeyItemMarket      Key = "item_market"
	KeyItemCompetitors Key = "item_competitors"
	KeyItemAudience    Key = "item_audience"
	KeyItemStrategy    Key = "item_strategy"
	KeyItemWeb         Key = "item_web"
	KeyItemMobile      Key = "item_mobile"
	KeyItemUI          Key = "item_ui"
	KeyItemSupport     Key = "item_support"
)

// Cases, case detail and blog pages.
const (
	KeyCasesPageTitle    Key = "cases_page_title"
	KeyCasesPageSubtitle Key = "cases_page_subtitle"
	KeyCasesCategory     Key = "cases_category"

	KeyCaseBack         Key = "case_back"
	KeyCaseChallenge    Key = "case_challenge"
	KeyCaseSolution     Key = "case_solution"
	KeyCaseResult       Key = "case_result"
	KeyCaseDuration     Key = "case_duration"
	KeyCaseTeam         Key = "case_team"
	KeyCaseObjectives   Key = "case_objectives"
	KeyCaseAchievements Key = "case_achievements"
	KeyCaseTechnologies Key = "case_technologies"
	KeyCaseNext         Key = "case_next"

	KeyBlogTitle    Key = "blog_title"
	KeyBlogSubtitle Key = "blog_subtitle"
	KeyBlogMinRead  Key = "blog_min_read"
	KeyBlogFeatured Key = "blog_featured"
)

// Contacts page and contact form.
const (
	KeyContactTitle     Key = "contact_title"
	KeyContactSubtitle  Key = "contact_subtitle"
	KeyContactFormTitle Key = "contact_form_title"

	KeyFieldName               Key = "field_name"
	KeyFieldNamePlaceholder    Key = "field_name_placeholder"
	KeyFieldEmail              Key = "field_email"
	KeyFieldEmailPlaceholder   Key = "field_email_placeholder"
	KeyFieldPhone              Key = "field_phone"
	KeyFieldPhonePlaceholder   Key = "field_phone_placeholder"
	KeyFieldMessage            Key = "field_message"
	KeyFieldMessagePlaceholder Key = "field_message_placeholder"

	KeyNameError    Key = "nameError"
	KeyEmailError   Key = "emailError"
	KeyPhoneError   Key = "phoneError"
	KeyMessageError Key = "messageError"

	KeyContactSubmit           Key = "contact_submit"
	KeyContactSubmitting       Key = "contact_submitting"
	KeyContactSuccess          Key = "contact_success"
	KeyContactSuccessDesc      Key = "contact_success_desc"
	KeyContactFailedTimeout    Key = "contact_failed_timeout"
	KeyContactFailedRejected   Key = "contact_failed_rejected"
	KeyContactFailedTransport  Key = "contact_failed_transport"
	KeyContactRetry            Key = "contact_retry"
	KeyContactInfo             Key = "contact_info"
	KeyContactAddress          Key = "contact_address"
	KeyContactAddressValue     Key = "contact_address_value"
	KeyContactPhoneValue       Key = "contact_phone_value"
	KeyContactEmailValue       Key = "contact_email_value"
	KeyContactWorkingHours     Key = "contact_working_hours"
	KeyContactWorkingHoursText Key = "contact_working_hours_value"
)

// Footer.
const (
	KeyFooterQuickLinks  Key = "footer_quick_links"
	KeyFooterContactInfo Key = "footer_contact_info"
	KeyFooterAddress     Key = "footer_address"
	KeyFooterSocial      Key = "footer_social"
	KeyFooterRights      Key = "footer_rights"
)

// Calendar and plural forms.
const (
	KeyMonth1  Key = "month_1"
	KeyMonth2  Key = "month_2"
	KeyMonth3  Key = "month_3"
	KeyMonth4  Key = "month_4"
	KeyMonth5  Key = "month_5"
	KeyMonth6  Key = "month_6"
	KeyMonth7  Key = "month_7"
	KeyMonth8  Key = "month_8"
	KeyMonth9  Key = "month_9"
	KeyMonth10 Key = "month_10"
	KeyMonth11 Key = "month_11"
	KeyMonth12 Key = "month_12"

	KeyMonthOne       Key = "months_one"
	KeyMonthFew       Key = "months_few"
	KeyMonthMany      Key = "months_many"
	KeySpecialistOne  Key = "specialists_one"
	KeySpecialistFew  Key = "specialists_few"
	KeySpecialistMany Key = "specialists_many"
)

// Error messages.
const (
	KeyErrRender       Key = "err_render"
	KeyErrRateLimit    Key = "err_rate_limit"
	KeyErrInvalidForm  Key = "err_invalid_form"
	KeyErrUnknownField Key = "err_unknown_field"
	KeyErrUnknownLang  Key = "err_unknown_lang"
)

var monthKeys = [12]Key{ //nolint:gochecknoglobals // immutable lookup table
	KeyMonth1, KeyMonth2, KeyMonth3, KeyMonth4, KeyMonth5, KeyMonth6,
	KeyMonth7, KeyMonth8, KeyMonth9, KeyMonth10, KeyMonth11, KeyMonth12,
}

// allKeys is the closed set every language table must define.
var allKeys = []Key{ //nolint:gochecknoglobals // immutable key list
	KeySiteTitle, KeySiteDescription,
	KeyNavHome, KeyNavServices, KeyNavCases, KeyNavBlog, KeyNavContacts,
	KeyLanguage, KeyLangRU, KeyLangKZ, KeyLangEN,

	KeyHeroTitle, KeyHeroSubtitle, KeyHeroDescription, KeyHeroCTAPrimary, KeyHeroCTASecondary,
	KeyKPITitle, KeyKPISubtitle, KeyKPIClients, KeyKPIProjects, KeyKPIExperience, KeyKPISpecialists,
	KeyServicesTitle, KeyServicesSubtitle, KeyServicesExplore,
	KeyServiceDigital, KeyServiceDigitalDesc, KeyServiceCommunication, KeyServiceCommunicationDsc,
	KeyServiceResearch, KeyServiceResearchDesc, KeyServiceTech, KeyServiceTechDesc,
	KeyCasesTitle, KeyCasesSubtitle, KeyCasesViewAll, KeyCasesResult, KeyCasesViewCase, KeyCasesPrev, KeyCasesNext,
	KeyCTATitle, KeyCTASubtitle, KeyCTAButton, KeyCTAFeature1, KeyCTAFeature2, KeyCTAFeature3,

	KeyServicesPageTitle, KeyServicesPageSubtitle, KeyServicesIncludes,
	KeyServiceDigitalFull, KeyServiceCommFull, KeyServiceResearchFull, KeyServiceTechFull,
	KeyItemSMM, KeyItemSEO, KeyItemPPC, KeyItemAnalytics, KeyItemBranding, KeyItemContent, KeyItemPR, KeyItemEvents,
	KeyItemMarket, KeyItemCompetitors, KeyItemAudience, KeyItemStrategy, KeyItemWeb, KeyItemMobile, KeyItemUI, KeyItemSupport,

	KeyCasesPageTitle, KeyCasesPageSubtitle, KeyCasesCategory,
	KeyCaseBack, KeyCaseChallenge, KeyCaseSolution, KeyCaseResult, KeyCaseDuration, KeyCaseTeam,
	KeyCaseObjectives, KeyCaseAchievements, KeyCaseTechnologies, KeyCaseNext,
	KeyBlogTitle, KeyBlogSubtitle, KeyBlogMinRead, KeyBlogFeatured,

	KeyContactTitle, KeyContactSubtitle, KeyContactFormTitle,
	KeyFieldName, KeyFieldNamePlaceholder, KeyFieldEmail, KeyFieldEmailPlaceholder,
	KeyFieldPhone, KeyFieldPhonePlaceholder, KeyFieldMessage, KeyFieldMessagePlaceholder,
	KeyNameError, KeyEmailError, KeyPhoneError, KeyMessageError,
	KeyContactSubmit, KeyContactSubmitting, KeyContactSuccess, KeyContactSuccessDesc,
	KeyContactFailedTimeout, KeyContactFailedRejected, KeyContactFailedTransport, KeyContactRetry,
	KeyContactInfo, KeyContactAddress, KeyContactAddressValue, KeyContactPhoneValue, KeyContactEmailValue,
	KeyContactWorkingHours, KeyContactWorkingHoursText,

	KeyFooterQuickLinks, KeyFooterContactInfo, KeyFooterAddress, KeyFooterSocial, KeyFooterRights,

	KeyMonth1, KeyMonth2, KeyMonth3, KeyMonth4, KeyMonth5, KeyMonth6,
	KeyMonth7, KeyMonth8, KeyMonth9, KeyMonth10, KeyMonth11, KeyMonth12,
	KeyMonthOne, KeyMonthFew, KeyMonthMany, KeySpecialistOne, KeySpecialistFew, KeySpecialistMany,

	KeyErrRender, KeyErrRateLimit, KeyErrInvalidForm, KeyErrUnknownField, KeyErrUnknownLang,
}

// AllKeys returns every declared translation key.
func AllKeys() []Key {
	return slices.Clone(allKeys)
}

// LangKey returns the key holding a language's display name.
func LangKey(lang Lang) Key {
	switch lang {
	case LangKZ:
		return KeyLangKZ
	case LangEN:
		return KeyLangEN
	default:
		return KeyLangRU
	}
}
