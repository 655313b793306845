package timeago

// wordingSet is a table-driven Language: two forms per unit, singular
// then plural.
type wordingSet struct {
	tooLow    string
	ago       string
	agoBefore bool
	words     [6][2]string
}

func (w *wordingSet) TooLow() string       { return w.tooLow }
func (w *wordingSet) Ago() string          { return w.ago }
func (w *wordingSet) PlaceAgoBefore() bool { return w.agoBefore }

func (w *wordingSet) Word(u Unit, n int64) string {
	if n == 1 || n == -1 {
		return w.words[u][0]
	}
	return w.words[u][1]
}

// English is the baseline wording set used when no dedicated table
// exists for a language.
var English Language = &wordingSet{
	tooLow: "just now",
	ago:    "ago",
	words: [6][2]string{
		{"minute", "minutes"},
		{"hour", "hours"},
		{"day", "days"},
		{"week", "weeks"},
		{"month", "months"},
		{"year", "years"},
	},
}

var portuguese Language = &wordingSet{
	tooLow:    "agora mesmo",
	ago:       "há",
	agoBefore: true,
	words: [6][2]string{
		{"minuto", "minutos"},
		{"hora", "horas"},
		{"dia", "dias"},
		{"semana", "semanas"},
		{"mês", "meses"},
		{"ano", "anos"},
	},
}

var spanish Language = &wordingSet{
	tooLow:    "ahora mismo",
	ago:       "hace",
	agoBefore: true,
	words: [6][2]string{
		{"minuto", "minutos"},
		{"hora", "horas"},
		{"día", "días"},
		{"semana", "semanas"},
		{"mes", "meses"},
		{"año", "años"},
	},
}

var french Language = &wordingSet{
	tooLow:    "à l'instant",
	ago:       "il y a",
	agoBefore: true,
	words: [6][2]string{
		{"minute", "minutes"},
		{"heure", "heures"},
		{"jour", "jours"},
		{"semaine", "semaines"},
		{"mois", "mois"},
		{"an", "ans"},
	},
}

var german Language = &wordingSet{
	tooLow:    "gerade eben",
	ago:       "vor",
	agoBefore: true,
	words: [6][2]string{
		{"Minute", "Minuten"},
		{"Stunde", "Stunden"},
		{"Tag", "Tagen"},
		{"Woche", "Wochen"},
		{"Monat", "Monaten"},
		{"Jahr", "Jahren"},
	},
}

var italian Language = &wordingSet{
	tooLow:    "proprio ora",
	ago:       "fa",
	words: [6][2]string{
		{"minuto", "minuti"},
		{"ora", "ore"},
		{"giorno", "giorni"},
		{"settimana", "settimane"},
		{"mese", "mesi"},
		{"anno", "anni"},
	},
}

var dutch Language = &wordingSet{
	tooLow: "zojuist",
	ago:    "geleden",
	words: [6][2]string{
		{"minuut", "minuten"},
		{"uur", "uur"},
		{"dag", "dagen"},
		{"week", "weken"},
		{"maand", "maanden"},
		{"jaar", "jaar"},
	},
}

// russianWording adds the few/many distinction Slavic unit words need.
type russianWording struct{}

func (russianWording) TooLow() string       { return "только что" }
func (russianWording) Ago() string          { return "назад" }
func (russianWording) PlaceAgoBefore() bool { return false }

var russianWords = [6][3]string{
	{"минуту", "минуты", "минут"},
	{"час", "часа", "часов"},
	{"день", "дня", "дней"},
	{"неделю", "недели", "недель"},
	{"месяц", "месяца", "месяцев"},
	{"год", "года", "лет"},
}

func (russianWording) Word(u Unit, n int64) string {
	if n < 0 {
		n = -n
	}
	mod10, mod100 := n%10, n%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return russianWords[u][0]
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return russianWords[u][1]
	default:
		return russianWords[u][2]
	}
}

var japanese Language = &wordingSet{
	tooLow: "たった今",
	ago:    "前",
	words: [6][2]string{
		{"分", "分"},
		{"時間", "時間"},
		{"日", "日"},
		{"週間", "週間"},
		{"ヶ月", "ヶ月"},
		{"年", "年"},
	},
}

var registry = map[string]Language{
	"en": English,
	"pt": portuguese,
	"es": spanish,
	"fr": french,
	"de": german,
	"it": italian,
	"nl": dutch,
	"ru": russianWording{},
	"ja": japanese,
}
