// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package i18n

// messages contains all translations keyed by language code.
//
//nolint:gochecknoglobals,lll // immutable translation map
var messages = map[Lang]map[Key]string{
	LangRU: {
		// Layout
		KeySiteTitle:       "CreativeStudio — Digital & Brandformance Agency",
		KeySiteDescription: "Digital-маркетинг, брендинг, исследования и технологические решения в Алматы",
		KeyNavHome:         "Главная",
		KeyNavServices:     "Услуги",
		KeyNavCases:        "Кейсы",
		KeyNavBlog:         "Блог",
		KeyNavContacts:     "Контакты",
		KeyLanguage:        "Язык",
		KeyLangRU:          "Русский",
		KeyLangKZ:          "Қазақша",
		KeyLangEN:          "English",

		// Hero
		KeyHeroTitle:        "Создаём цифровое будущее",
		KeyHeroSubtitle:     "Digital & Brandformance Agency CreativeStudio",
		KeyHeroDescription:  "Трансформируем бренды через инновационные digital-решения и стратегический подход к маркетингу",
		KeyHeroCTAPrimary:   "Оставить заявку",
		KeyHeroCTASecondary: "Наши услуги",

		// KPI
		KeyKPITitle:       "Наши достижения",
		KeyKPISubtitle:    "Цифры, которые говорят сами за себя",
		KeyKPIClients:     "Довольных клиентов",
		KeyKPIProjects:    "Реализованных проектов",
		KeyKPIExperience:  "Лет опыта",
		KeyKPISpecialists: "Специалистов в команде",

		// Services section
		KeyServicesTitle:           "Наши направления",
		KeyServicesSubtitle:        "Комплексные решения для вашего бизнеса",
		KeyServicesExplore:         "Узнать больше",
		KeyServiceDigital:          "Digital-маркетинг",
		KeyServiceDigitalDesc:      "SMM, SEO, контекстная реклама и продвижение в digital-пространстве",
		KeyServiceCommunication:    "Коммуникационные стратегии",
		KeyServiceCommunicationDsc: "Разработка креативных концепций и стратегий продвижения брендов",
		KeyServiceResearch:         "Исследования и аналитика",
		KeyServiceResearchDesc:     "Глубокий анализ рынка, аудитории и конкурентов для принятия решений",
		KeyServiceTech:             "Технологические решения",
		KeyServiceTechDesc:         "Разработка сайтов, приложений и цифровых продуктов",

		// Cases section
		KeyCasesTitle:    "Кейсы и проекты",
		KeyCasesSubtitle: "Успешные проекты наших клиентов",
		KeyCasesViewAll:  "Смотреть все кейсы",
		KeyCasesResult:   "Результат",
		KeyCasesViewCase: "Смотреть кейс",
		KeyCasesPrev:     "Предыдущий",
		KeyCasesNext:     "Следующий",

		// CTA
		KeyCTATitle:    "Готовы создать что-то невероятное?",
		KeyCTASubtitle: "Начните свой проект с CreativeStudio сегодня и превратите идеи в реальность",
		KeyCTAButton:   "Оставить заявку",
		KeyCTAFeature1: "Бесплатная консультация",
		KeyCTAFeature2: "Индивидуальный подход",
		KeyCTAFeature3: "Гарантия результата",

		// Services page
		KeyServicesPageTitle:    "Все наши услуги",
		KeyServicesPageSubtitle: "Комплексные решения для развития вашего бизнеса в digital-пространстве",
		KeyServicesIncludes:     "В услугу входит:",
		KeyServiceDigitalFull:   "Комплексное продвижение в digital-пространстве включая SMM, SEO, контекстную рекламу и email-маркетинг. Мы помогаем брендам достигать целевой аудитории и увеличивать конверсию.",
		KeyServiceCommFull:      "Разработка креативных концепций, коммуникационных стратегий и кампаний для продвижения брендов. Создаем уникальные послания, которые находят отклик у вашей аудитории.",
		KeyServiceResearchFull:  "Глубокий анализ рынка, целевой аудитории и конкурентов. Проводим количественные и качественные исследования для принятия обоснованных маркетинговых решений.",
		KeyServiceTechFull:      "Разработка сайтов, мобильных приложений и цифровых продуктов. От лендингов до сложных корпоративных платформ с использованием современных технологий.",
		KeyItemSMM:              "SMM и контент-маркетинг",
		KeyItemSEO:              "SEO-оптимизация",
		KeyItemPPC:              "Контекстная реклама",
		KeyItemAnalytics:        "Аналитика и отчетность",
		KeyItemBranding:         "Брендинг и айдентика",
		KeyItemContent:          "Креативный контент",
		KeyItemPR:               "PR и медиа",
		KeyItemEvents:           "Event-маркетинг",
		KeyItemMarket:           "Маркетинговые исследования",
		KeyItemCompetitors:      "Анализ конкурентов",
		KeyItemAudience:         "Исследование аудитории",
		KeyItemStrategy:         "Стратегическое планирование",
		KeyItemWeb:              "Веб-разработка",
		KeyItemMobile:           "Мобильные приложения",
		KeyItemUI:               "UI/UX дизайн",
		KeyItemSupport:          "Техническая поддержка",

		// Cases pages
		KeyCasesPageTitle:    "Полное портфолио",
		KeyCasesPageSubtitle: "Проекты, которыми мы гордимся",
		KeyCasesCategory:     "Категория",
		KeyCaseBack:          "Назад к кейсам",
		KeyCaseChallenge:     "Вызов",
		KeyCaseSolution:      "Решение",
		KeyCaseResult:        "Результат",
		KeyCaseDuration:      "Длительность",
		KeyCaseTeam:          "Команда",
		KeyCaseObjectives:    "Цели проекта",
		KeyCaseAchievements:  "Достижения",
		KeyCaseTechnologies:  "Технологии",
		KeyCaseNext:          "Следующий кейс",

		// Blog
		KeyBlogTitle:    "Наш Блог",
		KeyBlogSubtitle: "Последние новости, тренды и инсайты из мира digital",
		KeyBlogMinRead:  "мин чтения",
		KeyBlogFeatured: "Главное",

		// Contacts
		KeyContactTitle:            "Свяжитесь с нами",
		KeyContactSubtitle:         "Готовы начать проект? Оставьте заявку, и мы свяжемся с вами в ближайшее время",
		KeyContactFormTitle:        "Форма заявки",
		KeyFieldName:               "Ваше имя",
		KeyFieldNamePlaceholder:    "Иван Иванов",
		KeyFieldEmail:              "Email",
		KeyFieldEmailPlaceholder:   "ivan@example.com",
		KeyFieldPhone:              "Телефон",
		KeyFieldPhonePlaceholder:   "+7 (700) 123-45-67",
		KeyFieldMessage:            "Сообщение",
		KeyFieldMessagePlaceholder: "Расскажите о вашем проекте...",
		KeyNameError:               "Пожалуйста, введите ваше имя",
		KeyEmailError:              "Пожалуйста, введите корректный email",
		KeyPhoneError:              "Пожалуйста, введите номер телефона",
		KeyMessageError:            "Пожалуйста, расскажите о вашем проекте",
		KeyContactSubmit:           "Отправить заявку",
		KeyContactSubmitting:       "Отправка...",
		KeyContactSuccess:          "Спасибо! Мы получили вашу заявку",
		KeyContactSuccessDesc:      "Наш менеджер свяжется с вами в ближайшее время",
		KeyContactFailedTimeout:    "Сервер не ответил вовремя. Попробуйте ещё раз",
		KeyContactFailedRejected:   "Заявка отклонена. Проверьте данные и попробуйте снова",
		KeyContactFailedTransport:  "Не удалось отправить заявку. Попробуйте позже",
		KeyContactRetry:            "Повторить отправку",
		KeyContactInfo:             "Контактная информация",
		KeyContactAddress:          "Наш офис",
		KeyContactAddressValue:     "Алматы, Казахстан\nпр. Аль-Фараби, 77",
		KeyContactPhoneValue:       "+7 (727) 123-45-67",
		KeyContactEmailValue:       "info@creativestudio.kz",
		KeyContactWorkingHours:     "Часы работы",
		KeyContactWorkingHoursText: "Пн-Пт: 9:00 - 18:00\nСб-Вс: Выходной",

		// Footer
		KeyFooterQuickLinks:  "Быстрые ссылки",
		KeyFooterContactInfo: "Контактная информация",
		KeyFooterAddress:     "Алматы, Казахстан",
		KeyFooterSocial:      "Социальные сети",
		KeyFooterRights:      "© 2025 CreativeStudio. Все права защищены.",

		// Calendar (genitive case, as used in dates)
		KeyMonth1:  "января",
		KeyMonth2:  "февраля",
		KeyMonth3:  "марта",
		KeyMonth4:  "апреля",
		KeyMonth5:  "мая",
		KeyMonth6:  "июня",
		KeyMonth7:  "июля",
		KeyMonth8:  "августа",
		KeyMonth9:  "сентября",
		KeyMonth10: "октября",
		KeyMonth11: "ноября",
		KeyMonth12: "декабря",

		KeyMonthOne:       "месяц",
		KeyMonthFew:       "месяца",
		KeyMonthMany:      "месяцев",
		KeySpecialistOne:  "специалист",
		KeySpecialistFew:  "специалиста",
		KeySpecialistMany: "специалистов",

		// Error messages
		KeyErrRender:       "Ошибка отображения",
		KeyErrRateLimit:    "Слишком много запросов",
		KeyErrInvalidForm:  "Неверные данные формы",
		KeyErrUnknownField: "Неизвестное поле формы",
		KeyErrUnknownLang:  "Язык не поддерживается",
	},
	LangKZ: {
		// Layout
		KeySiteTitle:       "CreativeStudio — Digital & Brandformance Agency",
		KeySiteDescription: "Алматыдағы digital-маркетинг, брендинг, зерттеулер және технологиялық шешімдер",
		KeyNavHome:         "Басты бет",
		KeyNavServices:     "Қызметтер",
		KeyNavCases:        "Жобалар",
		KeyNavBlog:         "Блог",
		KeyNavContacts:     "Байланыс",
		KeyLanguage:        "Тіл",
		KeyLangRU:          "Русский",
		KeyLangKZ:          "Қазақша",
		KeyLangEN:          "English",

		// Hero
		KeyHeroTitle:        "Цифрлық болашақты құрамыз",
		KeyHeroSubtitle:     "Digital & Brandformance Agency CreativeStudio",
		KeyHeroDescription:  "Инновациялық digital шешімдер және маркетингке стратегиялық тәсіл арқылы брендтерді трансформациялаймыз",
		KeyHeroCTAPrimary:   "Өтінім қалдыру",
		KeyHeroCTASecondary: "Біздің қызметтер",

		// KPI
		KeyKPITitle:       "Біздің жетістіктер",
		KeyKPISubtitle:    "Өздері туралы айтатын сандар",
		KeyKPIClients:     "Қанағаттанған клиенттер",
		KeyKPIProjects:    "Іске асырылған жобалар",
		KeyKPIExperience:  "Жылдық тәжірибе",
		KeyKPISpecialists: "Команда мамандары",

		// Services section
		KeyServicesTitle:           "Біздің бағыттар",
		KeyServicesSubtitle:        "Сіздің бизнесіңіз үшін кешенді шешімдер",
		KeyServicesExplore:         "Толығырақ",
		KeyServiceDigital:          "Digital-маркетинг",
		KeyServiceDigitalDesc:      "SMM, SEO, контекстік жарнама және digital кеңістікте жылжыту",
		KeyServiceCommunication:    "Коммуникациялық стратегиялар",
		KeyServiceCommunicationDsc: "Креативті концепциялар мен брендтерді жылжыту стратегияларын әзірлеу",
		KeyServiceResearch:         "Зерттеулер және аналитика",
		KeyServiceResearchDesc:     "Шешім қабылдау үшін нарық, аудитория және бәсекелестерді терең талдау",
		KeyServiceTech:             "Технологиялық шешімдер",
		KeyServiceTechDesc:         "Сайттар, қосымшалар және цифрлық өнімдерді әзірлеу",

		// Cases section
		KeyCasesTitle:    "Кейстер және жобалар",
		KeyCasesSubtitle: "Клиенттерімізді табысты жобалары",
		KeyCasesViewAll:  "Барлық кейстерді қарау",
		KeyCasesResult:   "Нәтиже",
		KeyCasesViewCase: "Кейсті қарау",
		KeyCasesPrev:     "Алдыңғы",
		KeyCasesNext:     "Келесі",

		// CTA
		KeyCTATitle:    "Керемет нәрсе жасауға дайынсыз ба?",
		KeyCTASubtitle: "Бүгін CreativeStudio-мен жобаңызды бастаңыз және идеяларды шындыққа айналдырыңыз",
		KeyCTAButton:   "Өтінім қалдыру",
		KeyCTAFeature1: "Тегін кеңес",
		KeyCTAFeature2: "Жеке тәсіл",
		KeyCTAFeature3: "Нәтижеге кепілдік",

		// Services page
		KeyServicesPageTitle:    "Біздің барлық қызметтер",
		KeyServicesPageSubtitle: "Digital кеңістігінде бизнесіңізді дамыту үшін кешенді шешімдер",
		KeyServicesIncludes:     "Қызметке кіреді:",
		KeyServiceDigitalFull:   "SMM, SEO, контекстік жарнама және email-маркетингті қоса алғанда, digital кеңістікте кешенді жылжыту. Брендтерге мақсатты аудиторияға жетуге және конверсияны арттыруға көмектесеміз.",
		KeyServiceCommFull:      "Брендтерді жылжыту үшін креативті концепциялар, коммуникациялық стратегиялар мен науқандарды әзірлеу. Аудиторияңызда үн қосатын бірегей хабарламалар жасаймыз.",
		KeyServiceResearchFull:  "Нарықты, мақсатты аудиторияны және бәсекелестерді терең талдау. Негізделген маркетингтік шешімдер қабылдау үшін сандық және сапалық зерттеулер жүргіземіз.",
		KeyServiceTechFull:      "Сайттар, мобильді қосымшалар және цифрлық өнімдерді әзірлеу. Лендингтерден заманауи технологияларды пайдаланатын күрделі корпоративтік платформаларға дейін.",
		KeyItemSMM:              "SMM және контент-маркетинг",
		KeyItemSEO:              "SEO-оңтайландыру",
		KeyItemPPC:              "Контекстік жарнама",
		KeyItemAnalytics:        "Аналитика және есептілік",
		KeyItemBranding:         "Брендинг және айдентика",
		KeyItemContent:          "Креативті контент",
		KeyItemPR:               "PR және медиа",
		KeyItemEvents:           "Event-маркетинг",
		KeyItemMarket:           "Маркетингтік зерттеулер",
		KeyItemCompetitors:      "Бәсекелестерді талдау",
		KeyItemAudience:         "Аудиторияны зерттеу",
		KeyItemStrategy:         "Стратегиялық жоспарлау",
		KeyItemWeb:              "Веб-әзірлеу",
		KeyItemMobile:           "Мобильді қосымшалар",
		KeyItemUI:               "UI/UX дизайн",
		KeyItemSupport:          "Техникалық қолдау",

		// Cases pages
		KeyCasesPageTitle:    "Толық портфолио",
		KeyCasesPageSubtitle: "Мақтан тұратын жобалар",
		KeyCasesCategory:     "Санат",
		KeyCaseBack:          "Кейстерге оралу",
		KeyCaseChallenge:     "Міндет",
		KeyCaseSolution:      "Шешім",
		KeyCaseResult:        "Нәтиже",
		KeyCaseDuration:      "Ұзақтығы",
		KeyCaseTeam:          "Команда",
		KeyCaseObjectives:    "Жоба мақсаттары",
		KeyCaseAchievements:  "Жетістіктер",
		KeyCaseTechnologies:  "Технологиялар",
		KeyCaseNext:          "Келесі кейс",

		// Blog
		KeyBlogTitle:    "Біздің Блог",
		KeyBlogSubtitle: "Digital әлемінен соңғы жаңалықтар, трендтер және инсайттар",
		KeyBlogMinRead:  "мин оқу",
		KeyBlogFeatured: "Басты",

		// Contacts
		KeyContactTitle:            "Бізбен байланысыңыз",
		KeyContactSubtitle:         "Жобаны бастауға дайынсыз ба? Өтінім қалдырыңыз, біз сізбен жақын арада байланысамыз",
		KeyContactFormTitle:        "Өтінім формасы",
		KeyFieldName:               "Сіздің атыңыз",
		KeyFieldNamePlaceholder:    "Иван Иванов",
		KeyFieldEmail:              "Email",
		KeyFieldEmailPlaceholder:   "ivan@example.com",
		KeyFieldPhone:              "Телефон",
		KeyFieldPhonePlaceholder:   "+7 (700) 123-45-67",
		KeyFieldMessage:            "Хабарлама",
		KeyFieldMessagePlaceholder: "Жобаңыз туралы айтыңыз...",
		KeyNameError:               "Өтінеміз, атыңызды енгізіңіз",
		KeyEmailError:              "Өтінеміз, дұрыс email енгізіңіз",
		KeyPhoneError:              "Өтінеміз, телефон нөмірін енгізіңіз",
		KeyMessageError:            "Өтінеміз, жобаңыз туралы айтыңыз",
		KeyContactSubmit:           "Өтінім жіберу",
		KeyContactSubmitting:       "Жіберілуде...",
		KeyContactSuccess:          "Рахмет! Біз сіздің өтінімді алдық",
		KeyContactSuccessDesc:      "Біздің менеджер жақын арада сізбен байланысады",
		KeyContactFailedTimeout:    "Сервер уақытында жауап бермеді. Қайталап көріңіз",
		KeyContactFailedRejected:   "Өтінім қабылданбады. Деректерді тексеріп, қайталаңыз",
		KeyContactFailedTransport:  "Өтінімді жіберу мүмкін болмады. Кейінірек қайталаңыз",
		KeyContactRetry:            "Қайта жіберу",
		KeyContactInfo:             "Байланыс ақпараты",
		KeyContactAddress:          "Біздің офис",
		KeyContactAddressValue:     "Алматы, Қазақстан\nӘл-Фараби даңғылы, 77",
		KeyContactPhoneValue:       "+7 (727) 123-45-67",
		KeyContactEmailValue:       "info@creativestudio.kz",
		KeyContactWorkingHours:     "Жұмыс уақыты",
		KeyContactWorkingHoursText: "Дс-Жм: 9:00 - 18:00\nСб-Жс: Демалыс",

		// Footer
		KeyFooterQuickLinks:  "Жылдам сілтемелер",
		KeyFooterContactInfo: "Байланыс ақпараты",
		KeyFooterAddress:     "Алматы, Қазақстан",
		KeyFooterSocial:      "Әлеуметтік желілер",
		KeyFooterRights:      "© 2025 CreativeStudio. Барлық құқықтар қорғалған.",

		// Calendar
		KeyMonth1:  "қаңтар",
		KeyMonth2:  "ақпан",
		KeyMonth3:  "наурыз",
		KeyMonth4:  "сәуір",
		KeyMonth5:  "мамыр",
		KeyMonth6:  "маусым",
		KeyMonth7:  "шілде",
		KeyMonth8:  "тамыз",
		KeyMonth9:  "қыркүйек",
		KeyMonth10: "қазан",
		KeyMonth11: "қараша",
		KeyMonth12: "желтоқсан",

		KeyMonthOne:       "ай",
		KeyMonthFew:       "ай",
		KeyMonthMany:      "ай",
		KeySpecialistOne:  "маман",
		KeySpecialistFew:  "маман",
		KeySpecialistMany: "маман",

		// Error messages
		KeyErrRender:       "Көрсету қатесі",
		KeyErrRateLimit:    "Сұраулар тым көп",
		KeyErrInvalidForm:  "Форма деректері қате",
		KeyErrUnknownField: "Форманың белгісіз өрісі",
		KeyErrUnknownLang:  "Тіл қолдау көрсетілмейді",
	},
	LangEN: {
		// Layout
		KeySiteTitle:       "CreativeStudio — Digital & Brandformance Agency",
		KeySiteDescription: "Digital marketing, branding, research and tech solutions from Almaty",
		KeyNavHome:         "Home",
		KeyNavServices:     "Services",
		KeyNavCases:        "Cases",
		KeyNavBlog:         "Blog",
		KeyNavContacts:     "Contacts",
		KeyLanguage:        "Language",
		KeyLangRU:          "Русский",
		KeyLangKZ:          "Қазақша",
		KeyLangEN:          "English",

		// Hero
		KeyHeroTitle:        "Creating Digital Future",
		KeyHeroSubtitle:     "Digital & Brandformance Agency CreativeStudio",
		KeyHeroDescription:  "Transforming brands through innovative digital solutions and strategic marketing approach",
		KeyHeroCTAPrimary:   "Get Started",
		KeyHeroCTASecondary: "Our Services",

		// KPI
		KeyKPITitle:       "Our Achievements",
		KeyKPISubtitle:    "Numbers that speak for themselves",
		KeyKPIClients:     "Happy Clients",
		KeyKPIProjects:    "Completed Projects",
		KeyKPIExperience:  "Years of Experience",
		KeyKPISpecialists: "Team Specialists",

		// Services section
		KeyServicesTitle:           "Our Services",
		KeyServicesSubtitle:        "Comprehensive solutions for your business",
		KeyServicesExplore:         "Learn More",
		KeyServiceDigital:          "Digital Marketing",
		KeyServiceDigitalDesc:      "SMM, SEO, contextual advertising and promotion in digital space",
		KeyServiceCommunication:    "Communication Strategies",
		KeyServiceCommunicationDsc: "Development of creative concepts and brand promotion strategies",
		KeyServiceResearch:         "Research & Analytics",
		KeyServiceResearchDesc:     "Deep analysis of market, audience and competitors for decision making",
		KeyServiceTech:             "Tech Solutions",
		KeyServiceTechDesc:         "Development of websites, applications and digital products",

		// Cases section
		KeyCasesTitle:    "Cases & Projects",
		KeyCasesSubtitle: "Successful projects of our clients",
		KeyCasesViewAll:  "View All Cases",
		KeyCasesResult:   "Result",
		KeyCasesViewCase: "View Case",
		KeyCasesPrev:     "Previous",
		KeyCasesNext:     "Next",

		// CTA
		KeyCTATitle:    "Ready to create something incredible?",
		KeyCTASubtitle: "Start your project with CreativeStudio today and turn ideas into reality",
		KeyCTAButton:   "Get Started",
		KeyCTAFeature1: "Free Consultation",
		KeyCTAFeature2: "Individual Approach",
		KeyCTAFeature3: "Result Guarantee",

		// Services page
		KeyServicesPageTitle:    "All Our Services",
		KeyServicesPageSubtitle: "Comprehensive solutions for your business development in digital space",
		KeyServicesIncludes:     "Service includes:",
		KeyServiceDigitalFull:   "Comprehensive digital promotion including SMM, SEO, contextual advertising and email marketing. We help brands reach their target audience and increase conversions.",
		KeyServiceCommFull:      "Development of creative concepts, communication strategies and campaigns for brand promotion. We create unique messages that resonate with your audience.",
		KeyServiceResearchFull:  "Deep analysis of market, target audience and competitors. We conduct quantitative and qualitative research for informed marketing decisions.",
		KeyServiceTechFull:      "Development of websites, mobile applications and digital products. From landing pages to complex corporate platforms using modern technologies.",
		KeyItemSMM:              "SMM & Content Marketing",
		KeyItemSEO:              "SEO Optimization",
		KeyItemPPC:              "Contextual Advertising",
		KeyItemAnalytics:        "Analytics & Reporting",
		KeyItemBranding:         "Branding & Identity",
		KeyItemContent:          "Creative Content",
		KeyItemPR:               "PR & Media",
		KeyItemEvents:           "Event Marketing",
		KeyItemMarket:           "Market Research",
		KeyItemCompetitors:      "Competitor Analysis",
		KeyItemAudience:         "Audience Research",
		KeyItemStrategy:         "Strategic Planning",
		KeyItemWeb:              "Web Development",
		KeyItemMobile:           "Mobile Applications",
		KeyItemUI:               "UI/UX Design",
		KeyItemSupport:          "Technical Support",

		// Cases pages
		KeyCasesPageTitle:    "Complete Portfolio",
		KeyCasesPageSubtitle: "Projects we are proud of",
		KeyCasesCategory:     "Category",
		KeyCaseBack:          "Back to Cases",
		KeyCaseChallenge:     "Challenge",
		KeyCaseSolution:      "Solution",
		KeyCaseResult:        "Result",
		KeyCaseDuration:      "Duration",
		KeyCaseTeam:          "Team",
		KeyCaseObjectives:    "Project Objectives",
		KeyCaseAchievements:  "Achievements",
		KeyCaseTechnologies:  "Technologies",
		KeyCaseNext:          "Next Case",

		// Blog
		KeyBlogTitle:    "Our Blog",
		KeyBlogSubtitle: "Latest news, trends and insights from the digital world",
		KeyBlogMinRead:  "min read",
		KeyBlogFeatured: "Featured",

		// Contacts
		KeyContactTitle:            "Contact Us",
		KeyContactSubtitle:         "Ready to start a project? Leave a request and we will contact you soon",
		KeyContactFormTitle:        "Request Form",
		KeyFieldName:               "Your Name",
		KeyFieldNamePlaceholder:    "John Doe",
		KeyFieldEmail:              "Email",
		KeyFieldEmailPlaceholder:   "john@example.com",
		KeyFieldPhone:              "Phone",
		KeyFieldPhonePlaceholder:   "+7 (700) 123-45-67",
		KeyFieldMessage:            "Message",
		KeyFieldMessagePlaceholder: "Tell us about your project...",
		KeyNameError:               "Please enter your name",
		KeyEmailError:              "Please enter a valid email",
		KeyPhoneError:              "Please enter your phone number",
		KeyMessageError:            "Please tell us about your project",
		KeyContactSubmit:           "Submit Request",
		KeyContactSubmitting:       "Submitting...",
		KeyContactSuccess:          "Thank you! We received your request",
		KeyContactSuccessDesc:      "Our manager will contact you soon",
		KeyContactFailedTimeout:    "The server did not answer in time. Please try again",
		KeyContactFailedRejected:   "Your request was rejected. Check the details and try again",
		KeyContactFailedTransport:  "We could not send your request. Please try again later",
		KeyContactRetry:            "Try again",
		KeyContactInfo:             "Contact Information",
		KeyContactAddress:          "Our Office",
		KeyContactAddressValue:     "Almaty, Kazakhstan\nAl-Farabi Ave, 77",
		KeyContactPhoneValue:       "+7 (727) 123-45-67",
		KeyContactEmailValue:       "info@creativestudio.kz",
		KeyContactWorkingHours:     "Working Hours",
		KeyContactWorkingHoursText: "Mon-Fri: 9:00 AM - 6:00 PM\nSat-Sun: Closed",

		// Footer
		KeyFooterQuickLinks:  "Quick Links",
		KeyFooterContactInfo: "Contact Information",
		KeyFooterAddress:     "Almaty, Kazakhstan",
		KeyFooterSocial:      "Social Media",
		KeyFooterRights:      "© 2025 CreativeStudio. All rights reserved.",

		// Calendar
		KeyMonth1:  "January",
		KeyMonth2:  "February",
		KeyMonth3:  "March",
		KeyMonth4:  "April",
		KeyMonth5:  "May",
		KeyMonth6:  "June",
		KeyMonth7:  "July",
		KeyMonth8:  "August",
		KeyMonth9:  "September",
		KeyMonth10: "October",
		KeyMonth11: "November",
		KeyMonth12: "December",

		KeyMonthOne:       "month",
		KeyMonthFew:       "months",
		KeyMonthMany:      "months",
		KeySpecialistOne:  "specialist",
		KeySpecialistFew:  "specialists",
		KeySpecialistMany: "specialists",

		// Error messages
		KeyErrRender:       "Failed to render page",
		KeyErrRateLimit:    "Too many requests",
		KeyErrInvalidForm:  "Invalid form data",
		KeyErrUnknownField: "Unknown form field",
		KeyErrUnknownLang:  "Unsupported language",
	},
}
