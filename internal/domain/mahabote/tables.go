package mahabote

import "time"

type house struct {
	Name            string
	Burmese         string
	Planet          string
	NaturalDay      string
	Characteristics string
}

// houses maps the seven Mahabote house indexes to their static metadata.
// Index 0 corresponds to a Saturday-natured house, index 1 Sunday, and so on.
var houses = [7]house{
	{
		Name:            "Binga (ဘင်္ဂ)",
		Burmese:         "ဘင်္ဂ",
		Planet:          "Saturn",
		NaturalDay:      "Saturday",
		Characteristics: "စိတ်ရှည်သည်းခံ၍ ပြင်းထန်သောကံတရားနှင့် တရားမျှတမှုတို့နှင့် ဆက်နွှယ်သည်။ အဆုံးတွင် အောင်မြင်မည့်သူ။ (Disciplined, patient; associated with karma and justice. Ultimately victorious.)",
	},
	{
		Name:            "Yaza (ရာဇ)",
		Burmese:         "ရာဇ",
		Planet:          "Sun",
		NaturalDay:      "Sunday",
		Characteristics: "ခေါင်းဆောင်မှု၊ အာဏာ၊ မင်းသားဂုဏ်ရည်ရှိသော သဘာဝ။ မွေးဖွားလာသောနေ့မှ ခေါင်းဆောင်ဖြစ်ရန် ကြိုးသားသူ။ (Leadership, authority, noble nature. Born to lead and inspire.)",
	},
	{
		Name:            "Athit (ဓာတ်)",
		Burmese:         "ဓာတ်",
		Planet:          "Moon",
		NaturalDay:      "Monday",
		Characteristics: "ဉာဏ်တုံ၊ ကရုဏာ၊ ခံစားချက်ကြွယ်ဝသော ဝိညာဉ်ဖြစ်သည်။ ဖန်တီးမှု၊ ပြုစုစောင့်ရှောက်မှုနှင့် ကြွယ်ဝ။ (Intuitive, compassionate, emotionally intelligent, creative and nurturing.)",
	},
	{
		Name:            "Mahat (မဟာ)",
		Burmese:         "မဟာ",
		Planet:          "Mars",
		NaturalDay:      "Tuesday",
		Characteristics: "ရဲစွမ်းသတ္တိ၊ ဇောင်ချောင်ချောင်၊ ခိုင်မာသောဇွဲနှင့် ပြင်းပြသောစိတ်ဓာတ်ရှိသည်။ (Courageous, energetic, determined, passionate but can be impulsive.)",
	},
	{
		Name:            "Atwan (အာတ်ဝမ်)",
		Burmese:         "အာတ်ဝမ်",
		Planet:          "Mercury",
		NaturalDay:      "Wednesday",
		Characteristics: "ဉာဏ်ပညာ၊ ဆက်ဆံရေးကောင်းမွန်မှု၊ ကုန်သည်ပညာနှင့် ညှိနိှုင်းဆွေးနွေးမှုတွင် ကျွမ်းကျင်သည်။ (Intellectual, communicative, skilled in trade and negotiation.)",
	},
	{
		Name:            "Thinga (သင်္ဃ)",
		Burmese:         "သင်္ဃ",
		Planet:          "Jupiter",
		NaturalDay:      "Thursday",
		Characteristics: "ပညာဗဟုသုတ၊ ကြင်နာမှု၊ ကောင်းစားချမ်းသာမှုနှင့် ကံကောင်းမှုများ ကြုံတွေ့မည်။ (Wisdom, generosity, spiritual inclination, good fortune and prosperity.)",
	},
	{
		Name:            "Yat (ရာဟု)",
		Burmese:         "ရာဟု",
		Planet:          "Venus",
		NaturalDay:      "Friday",
		Characteristics: "အနုပညာ၊ အဆွေမိတ်ကောင်းစိတ်၊ လူမှုဆက်ဆံရေးကောင်းမွန်ပြီး သံတမန်တတ်သော ပုဂ္ဂိုလ်။ (Artistic, charming, strong social bonds and diplomacy.)",
	},
}

var burmeseWeekdays = map[time.Weekday]string{
	time.Sunday:    "တနင်္ဂနွေ",
	time.Monday:    "တနင်္လာ",
	time.Tuesday:   "အင်္ဂါ",
	time.Wednesday: "ဗုဒ္ဓဟူး",
	time.Thursday:  "ကြာသပတေး",
	time.Friday:    "သောကြာ",
	time.Saturday:  "စနေ",
}

var burmeseNakshatras = map[time.Weekday]string{
	time.Sunday:    "ကြောင်း (Kyaung)",
	time.Monday:    "ကြတ်ဖတ် (Kyat Phat)",
	time.Tuesday:   "နတ်တော် (Nat Taw)",
	time.Wednesday: "သနာ် (Tha Nar)",
	time.Thursday:  "ကြာ (Kyar)",
	time.Friday:    "သမာ (Tha Ma)",
	time.Saturday:  "ဆာဘာ (Sa Ba)",
}
