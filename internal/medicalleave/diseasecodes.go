package medicalleave

// DiseaseCode is one entry of the fixed national classification used on
// medical-leave certificates.
type DiseaseCode struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var DiseaseCodes = []DiseaseCode{
	{"01", "Boală obişnuită"},
	{"02", "Accident în timpul deplasării la/de la locul de muncă"},
	{"03", "Accident de muncă"},
	{"04", "Boală profesională"},
	{"05", "Boală infectocontagioasă din grupa A"},
	{"51", "Boală infectocontagioasă pentru care se instituie măsura izolării"},
	{"06", "Urgenţă medico-chirurgicală"},
	{"07", "Carantină"},
	{"08", "Sarcină şi lăuzie"},
	{"09", "Îngrijire copil bolnav în vârstă de până la 12 ani sau copil cu handicap"},
	{"91", "Îngrijire copil bolnav cu afecțiuni grave, în vârstă de până la 18 ani"},
	{"92", "Supravegherea și îngrijirea copilului în vârstă de până la 18 ani, pentru care s-a dispus măsura carantinei sau a izolării"},
	{"10", "Reducerea cu 1/4 a duratei normale de lucru"},
	{"11", "Trecerea temporară în altă muncă"},
	{"12", "Tuberculoză"},
	{"13", "Boală cardiovasculară"},
	{"14", "Neoplazii, SIDA"},
	{"15", "Risc maternal"},
	{"16", "Unele tipuri de arsuri, inclusiv pentru perioada de recuperare"},
	{"17", "Îngrijire pacient cu afecțiuni oncologice"},
}

func ValidDiseaseCode(code string) bool {
	for _, dc := range DiseaseCodes {
		if dc.Code == code {
			return true
		}
	}
	return false
}
