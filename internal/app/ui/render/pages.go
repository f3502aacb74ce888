package render

import "kadry/internal/app/ui/content"

// Display text for the fixed pages
const (
	HomeTitle      = "Новости"
	DocumentsTitle = "Бланки документов"
	ContactsTitle  = "Контакты"

	BackLabel      = "← Назад к новостям"
	EmptyHomeLabel = "Новостей пока нет"

	documentsIntro = "Ниже представлены наиболее распространенные бланки документов. Скачивайте в удобном формате и пользуйтесь"
	documentsRoot  = "documents/"
)

type form struct {
	label string
	word  string
	pdf   string
}

type formGroup struct {
	heading string
	dir     string
	forms   []form
}

var formGroups = []formGroup{
	{
		forms: []form{
			{"Заявление на прием", "zayvlenie-na-priem.docx", "zayvlenie-na-priem.pdf"},
			{"Заявление на смену ФИО", "zayvlenie-na-smenu-fio.docx", "zayvlenie-na-smenu-fio.pdf"},
			{"Заявление на отправку справки почтой", "zayvlenie-na-otpravku-spravki-pochtoy.docx", "zayvlenie-na-otpravku-spravki-pochtoy.pdf"},
			{"Заявление на отправку копии трудовой книжки почтой", "zayvlenie-na-otpravku-kopii-trudovoy-pochtoy.docx", "zayvlenie-na-otpravku-kopii-trudovoy-pochtoy.pdf"},
		},
	},
	{
		heading: "Отпуск и отгулы",
		dir:     "vacation/",
		forms: []form{
			{"Заявление на ежегодный отпуск", "zayvlenie-na-ezegodniy-otpusk.docx", "zayvlenie-na-ezegodniy-otpusk.pdf"},
			{"Заявление на отгул за свой счет", "zayvlenie-na-otpusk-bez-zp.docx", "zayvlenie-na-otpusk-bez-zp.pdf"},
			{"Заявление на перенос отпуска", "zayvlenie-na-perenos-otpuska.docx", "zayvlenie-na-perenos-otpuska.pdf"},
			{"Заявление на перенос отпуска из-за болезни", "zayvlenie-na-perenos-otpuska-izza-bolezni.docx", "zayvlenie-na-perenos-otpuska-izza-bolezni.pdf"},
			{"Заявление на учебный отпуск", "zayvlenie-na-uchebniy-otpusk.docx", "zayvlenie-na-uchebniy-otpusk.pdf"},
			{"Заявление на диспансеризацию", "zayvlenie-na-dispanserizaciyu.docx", "zayvlenie-na-dispanserizaciyu.pdf"},
			{"Заявление на отгул для посещения военкомата", "zayvlenie-na-otgul-v-voenkomat.docx", "zayvlenie-na-otgul-v-voenkomat.pdf"},
			{"Заявление на отгул за следующий день после сдачи крови (донор)", "zayvlenie-na-otgul-za-donorstvo-posle-sdachi.doc", "zayvlenie-na-otgul-za-donorstvo-posle-sdachi.pdf"},
			{"Заявление на отгул за день сдачи крови (донор)", "zayvlenie-na-otgul-za-donorstvo-za-den-sdachi.doc", "zayvlenie-na-otgul-za-donorstvo-za-den-sdachi.pdf"},
		},
	},
	{
		heading: "Зарплата и удержания",
		dir:     "salary/",
		forms: []form{
			{"Заявление на перечисление зарплаты на карту", "zayvlenie-na-perechislenie-zp.docx", "zayvlenie-na-perechislenie-zp.pdf"},
			{"Заявление на удержание подотчетных сумм", "zayvlenie-na-uderzanie-podotcheta.docx", "zayvlenie-na-uderzanie-podotcheta.pdf"},
			{"Заявление на удержание бланка трудовой книжки", "zayvlenie-na-uderzanie-tk.docx", "zayvlenie-na-uderzanie-tk.pdf"},
			{"Заявление на удержание бланка вкладыша к трудовой книжке", "zayvlenie-na-uderzanie-vkladysha-tk.docx", "zayvlenie-na-uderzanie-vkladysha-tk.pdf"},
		},
	},
	{
		heading: "Налоговые вычеты",
		dir:     "deductions/",
		forms: []form{
			{"Заявление на вычеты общее", "zayvlenie-na-vychety.docx", "zayvlenie-na-vychety.pdf"},
			{"Заявление на имущественный вычет", "zayvlenie-na-imuschestveniy-vychet.docx", "zayvlenie-na-imuschestveniy-vychet.pdf"},
		},
	},
	{
		heading: "Служебные записки",
		dir:     "official/",
		forms: []form{
			{"Служебная записка на представительские расходы", "sluzebka-na-predstavitelskie.doc", ""},
			{"Служебная записка на премию", "sluzebka-na-premiyu.docx", ""},
			{"Служебная записка бланк", "sluzebnay-zapiska.doc", ""},
		},
	},
	{
		heading: "Декрет",
		dir:     "decree/",
		forms: []form{
			{"Заявление на отпуск по беременности и родам", "zayvlenie-po-beremennosti-i-rodam.docx", "zayvlenie-po-beremennosti-i-rodam.pdf"},
			{"Заявление на отпуск по уходу за ребенком", "zayvlenie-na-otpusk-po-uhodu.docx", "zayvlenie-na-otpusk-po-uhodu.pdf"},
			{"Заявление о замене лет для расчета пособия", "zayvlenie-o-zamene-let.docx", "zayvlenie-o-zamene-let.pdf"},
		},
	},
	{
		heading: "Увольнение",
		dir:     "layoff/",
		forms: []form{
			{"Заявление на увольнение", "zayvlenie-na-uvolnenie.docx", "zayvlenie-na-uvolnenie.pdf"},
			{"Заявление на отпуск с последующим увольнением", "zayvlenie-na-otpusk-s-posleduyuschim-uvolneniem.docx", "zayvlenie-na-otpusk-s-posleduyuschim-uvolneniem.pdf"},
			{"Заявление на отправку трудовой книжки по почте", "zayvlenie-na-otpravku-tk-pochtoy.docx", "zayvlenie-na-otpravku-tk-pochtoy.pdf"},
			{"Заявление на отправку электронной трудовой книжки по почте", "zayvlenie-na-otpravku-etk-pochtoy.docx", "zayvlenie-na-otpravku-etk-pochtoy.pdf"},
		},
	},
}

func documentSections() []content.Section {
	sections := make([]content.Section, 0, len(formGroups)+1)
	sections = append(sections, content.Section{Paragraphs: []string{documentsIntro}})

	for i, group := range formGroups {
		entries := make([]content.Entry, 0, len(group.forms))

		for _, f := range group.forms {
			entry := content.Entry{Label: f.label}

			if f.word != "" {
				entry.Links = append(entry.Links, content.Link{Label: "Word", Target: documentsRoot + group.dir + f.word})
			}

			if f.pdf != "" {
				entry.Links = append(entry.Links, content.Link{Label: "PDF", Target: documentsRoot + group.dir + f.pdf})
			}

			entries = append(entries, entry)
		}

		// the ungrouped forms share the intro section
		if i == 0 && group.heading == "" {
			sections[0].Entries = entries
			continue
		}

		sections = append(sections, content.Section{Heading: group.heading, Entries: entries})
	}

	return sections
}

func contactSections() []content.Section {
	return []content.Section{
		{
			Paragraphs: []string{"Если у вас есть вопросы или предложения, пожалуйста, свяжитесь со мной:"},
			Entries: []content.Entry{
				{Label: "Электронная почта:", Links: []content.Link{{Label: "natasha01013@yandex.ru", Target: "mailto:natasha01013@yandex.ru"}}},
				{Label: "Телеграм:", Links: []content.Link{{Label: "@natasha01013", Target: "https://t.me/natasha01013"}}},
			},
		},
		{
			Paragraphs: []string{"Я всегда рада помочь и благодарна за обратную связь!"},
			Entries: []content.Entry{
				{Label: "О публикации новых новостей буду писать в", Links: []content.Link{{Label: "Telegram", Target: "https://t.me/kadryzarplata"}}},
			},
		},
	}
}
