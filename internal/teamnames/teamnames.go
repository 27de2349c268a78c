package teamnames

// Table maps canonical English franchise names to their Hebrew display names.
type Table map[string]string

// Hebrew returns the static translation table for all 30 franchises.
// Loaded once at startup and passed by value into the extractor; callers
// must not mutate it.
func Hebrew() Table {
	return hebrewNames
}

// Lookup returns the Hebrew display name for a canonical English name.
func (t Table) Lookup(name string) (string, bool) {
	he, ok := t[name]
	return he, ok
}

var hebrewNames = Table{
	"Atlanta Hawks":          "אטלנטה הוקס",
	"Boston Celtics":         "בוסטון סלטיקס",
	"Brooklyn Nets":          "ברוקלין נטס",
	"Charlotte Hornets":      "שארלוט הורנטס",
	"Chicago Bulls":          "שיקגו בולס",
	"Cleveland Cavaliers":    "קליבלנד קאבלירס",
	"Dallas Mavericks":       "דאלאס מאבריקס",
	"Denver Nuggets":         "דנבר נאגטס",
	"Detroit Pistons":        "דטרויט פיסטונס",
	"Golden State Warriors":  "גולדן סטייט ווריירס",
	"Houston Rockets":        "יוסטון רוקטס",
	"Indiana Pacers":         "אינדיאנה פייסרס",
	"LA Clippers":            "לוס אנג׳לס קליפרס",
	"Los Angeles Lakers":     "לוס אנג׳לס לייקרס",
	"Memphis Grizzlies":      "ממפיס גריזליס",
	"Miami Heat":             "מיאמי היט",
	"Milwaukee Bucks":        "מילווקי באקס",
	"Minnesota Timberwolves": "מינסוטה טימברוולבס",
	"New Orleans Pelicans":   "ניו אורלינס פליקנס",
	"New York Knicks":        "ניו יורק ניקס",
	"Oklahoma City Thunder":  "אוקלהומה סיטי ת׳אנדר",
	"Orlando Magic":          "אורלנדו מג׳יק",
	"Philadelphia 76ers":     "פילדלפיה סבנטי סיקסרס",
	"Phoenix Suns":           "פיניקס סאנס",
	"Portland Trail Blazers": "פורטלנד טרייל בלייזרס",
	"Sacramento Kings":       "סקרמנטו קינגס",
	"San Antonio Spurs":      "סן אנטוניו ספרס",
	"Toronto Raptors":        "טורונטו ראפטורס",
	"Utah Jazz":              "יוטה ג׳אז",
	"Washington Wizards":     "וושינגטון וויזארדס",
}
