package services

import (
	"nko_site_go/models"

	"github.com/microcosm-cc/bluemonday"
)

// contentPolicy strips everything but basic inline formatting from content markup
var contentPolicy = bluemonday.UGCPolicy()

// SanitizeContent returns markup that is safe to render unescaped
func SanitizeContent(markup string) string {
	return contentPolicy.Sanitize(markup)
}

var siteContent = models.SiteContent{
	BrandName:   "НКО Регистрация",
	Tagline:     "Профессиональная регистрация некоммерческих организаций с 2012 года",
	FoundedYear: 2012,
	HeroImage:   "https://cdn.poehali.dev/projects/29385ec4-2da9-4b5b-a273-f1570110f474/files/85322cc1-52bf-40d5-ac51-0021b55b4869.jpg",
	AboutImage:  "https://cdn.poehali.dev/projects/29385ec4-2da9-4b5b-a273-f1570110f474/files/ba65309b-c73f-405f-8c2e-aab281680087.jpg",
	Nav: []models.NavItem{
		{Label: "Услуги", Anchor: "services"},
		{Label: "Процесс", Anchor: "process"},
		{Label: "О нас", Anchor: "about"},
		{Label: "FAQ", Anchor: "faq"},
		{Label: "Контакты", Anchor: "contacts"},
	},
	Services: []models.Service{
		{Icon: "file-check", Title: "Регистрация НКО", Description: "Полное сопровождение процесса регистрации некоммерческой организации под ключ", Price: "от 45 000 ₽"},
		{Icon: "building", Title: "Создание фондов", Description: "Регистрация благотворительных и частных фондов с юридической поддержкой", Price: "от 60 000 ₽"},
		{Icon: "users", Title: "Регистрация ассоциаций", Description: "Создание ассоциаций, союзов и объединений юридических лиц", Price: "от 55 000 ₽"},
		{Icon: "shield", Title: "Юридическая защита", Description: "Представление интересов НКО в государственных органах", Price: "от 30 000 ₽"},
		{Icon: "file-text", Title: "Подготовка документов", Description: "Разработка уставов, положений и других учредительных документов", Price: "от 25 000 ₽"},
		{Icon: "refresh-cw", Title: "Реорганизация НКО", Description: "Помощь в изменении структуры, слиянии или преобразовании организации", Price: "от 40 000 ₽"},
	},
	Process: []models.ProcessStep{
		{Step: "01", Title: "Консультация", Description: "Бесплатная консультация по выбору формы НКО и оценка перспектив регистрации"},
		{Step: "02", Title: "Подготовка документов", Description: "Сбор необходимых документов и разработка учредительных документов"},
		{Step: "03", Title: "Подача заявления", Description: "Подача документов в Министерство юстиции через электронную систему"},
		{Step: "04", Title: "Получение регистрации", Description: "Получение свидетельства о регистрации и постановка на учет в налоговой"},
	},
	Documents: []models.SampleDocument{
		{Slug: "ustav", Title: "Устав НКО (образец)", Description: "Типовой устав некоммерческой организации", Icon: "file-text", Format: "DOCX", FileName: "ustav-nko.docx"},
		{Slug: "zayavlenie", Title: "Заявление на регистрацию", Description: "Форма Р11001 для регистрации НКО", Icon: "file-signature", Format: "PDF", FileName: "zayavlenie-r11001.pdf"},
		{Slug: "protokol", Title: "Протокол учредительного собрания", Description: "Образец протокола создания организации", Icon: "file-check", Format: "DOCX", FileName: "protokol-sobraniya.docx"},
		{Slug: "checklist", Title: "Чек-лист документов", Description: "Полный перечень необходимых документов", Icon: "list-checks", Format: "PDF", FileName: "checklist-dokumentov.pdf"},
	},
	Advantages: []models.Advantage{
		{Icon: "award", Title: "Гарантия результата", Description: "Возврат средств, если регистрация не состоится по нашей вине"},
		{Icon: "clock", Title: "Быстрые сроки", Description: "Оптимизированный процесс позволяет сократить время регистрации"},
		{Icon: "briefcase", Title: "Опыт и экспертиза", Description: "Наши юристы знают все тонкости законодательства о НКО"},
	},
	Testimonials: []models.Testimonial{
		{Name: "Анна Петрова", Organization: `Благотворительный фонд "Доброе сердце"`, Text: "Профессиональная команда! Зарегистрировали наш фонд быстро и без проблем. Все документы были подготовлены идеально.", Rating: 5},
		{Name: "Михаил Сидоров", Organization: "Ассоциация предпринимателей", Text: "Отличное сопровождение на всех этапах. Особенно помогли с выбором оптимальной формы организации.", Rating: 5},
		{Name: "Елена Иванова", Organization: `НКО "Развитие культуры"`, Text: "Спасибо за оперативность и профессионализм! Рекомендую всем, кто планирует создавать НКО.", Rating: 5},
	},
	FAQ: []models.FAQItem{
		{
			Question: "Сколько времени занимает регистрация НКО?",
			Answer:   "Стандартная процедура регистрации занимает <strong>от 30 до 45 рабочих дней</strong> с момента подачи документов в Минюст. Мы помогаем максимально сократить этот срок за счет правильной подготовки документов.",
		},
		{
			Question: "Какие документы нужны для регистрации?",
			Answer:   "Основные документы: заявление о регистрации, устав НКО в 3 экземплярах, протокол учредительного собрания, сведения об учредителях, квитанция об оплате госпошлины. Полный список зависит от формы НКО.",
		},
		{
			Question: "Можно ли зарегистрировать НКО одному человеку?",
			Answer:   "Да, некоторые формы НКО (например, фонд) может создать один учредитель. Для других форм (ассоциация, некоммерческое партнерство) требуется <strong>минимум 2-3 учредителя</strong>.",
		},
		{
			Question: "Какова стоимость государственной пошлины?",
			Answer:   "Государственная пошлина за регистрацию НКО составляет <strong>4 000 рублей</strong>. Эта сумма не входит в стоимость наших услуг и оплачивается отдельно.",
		},
		{
			Question: "Нужен ли юридический адрес для НКО?",
			Answer:   "Да, юридический адрес обязателен. Мы можем помочь с подбором и арендой юридического адреса, соответствующего всем требованиям законодательства.",
		},
	},
	Pricing: []models.PricingTier{
		{
			Badge:       "Базовый",
			Name:        "Консультация",
			Price:       "Бесплатно",
			Description: "Для тех, кто только планирует",
			Features:    []string{"Консультация юриста 30 мин", "Анализ перспектив регистрации", "Подбор формы НКО"},
			CTA:         "Получить консультацию",
		},
		{
			Badge:       "Стандарт",
			Name:        "Под ключ",
			Price:       "45 000 ₽",
			Description: "Полное сопровождение регистрации",
			Features:    []string{`Все из тарифа "Базовый"`, "Подготовка всех документов", "Подача в Минюст", "Получение свидетельства", "Постановка на налоговый учет"},
			CTA:         "Выбрать тариф",
			Highlighted: true,
		},
		{
			Badge:       "Премиум",
			Name:        "VIP",
			Price:       "75 000 ₽",
			Description: "Максимальное сопровождение",
			Features:    []string{`Все из тарифа "Стандарт"`, "Приоритетное обслуживание", "Юридическая поддержка 6 мес", "Помощь с юридическим адресом", "Личный менеджер"},
			CTA:         "Выбрать тариф",
		},
	},
	Contacts: []models.ContactChannel{
		{Icon: "phone", Title: "Телефон", Value: "+7 (495) 123-45-67", Note: "Пн-Пт с 9:00 до 18:00", Href: "tel:+74951234567"},
		{Icon: "mail", Title: "Email", Value: "info@nko-registration.ru", Note: "Ответим в течение часа", Href: "mailto:info@nko-registration.ru"},
		{Icon: "map-pin", Title: "Офис", Value: "Москва, ул. Тверская, д. 1", Note: `БЦ "Центр", 5 этаж`},
	},
}

// SiteContent returns the landing page reference data. Callers must not modify it.
func SiteContent() *models.SiteContent {
	return &siteContent
}

// FindSampleDocument looks up a downloadable document by slug
func FindSampleDocument(slug string) (models.SampleDocument, bool) {
	for _, doc := range siteContent.Documents {
		if doc.Slug == slug {
			return doc, true
		}
	}
	return models.SampleDocument{}, false
}
