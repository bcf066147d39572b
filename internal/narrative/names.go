// Embedded vocabularies for character generation: first names,
// occupations (some in "specific, general" catalog form), and the
// demeanor adjective list.
package narrative

var maleNames = []string{
	"Harold", "Walter", "Raymond", "Dennis", "Gerald", "Eugene", "Leonard",
	"Vernon", "Clifford", "Marvin", "Stanley", "Howard", "Earl", "Russell",
	"Franklin", "Albert", "Chester", "Clarence", "Wallace", "Norman",
	"Edwin", "Harvey", "Lloyd", "Milton", "Arthur", "Bernard", "Cecil",
	"Duane", "Elmer", "Floyd",
}

var femaleNames = []string{
	"Dorothy", "Mildred", "Frances", "Evelyn", "Gladys", "Edith", "Ethel",
	"Beatrice", "Bernice", "Lucille", "Pauline", "Vivian", "Thelma",
	"Margaret", "Eleanor", "Harriet", "Irene", "Josephine", "Marjorie",
	"Sylvia", "Agnes", "Clara", "Doris", "Estelle", "Florence", "Geraldine",
	"Hazel", "Inez", "June", "Lorraine",
}

// occupations follows job-catalog convention: when a comma is present
// the general term comes first ("teacher, secondary"), and the
// narrative reorders it to read naturally.
var occupations = []string{
	"teacher, secondary",
	"teacher, primary school",
	"engineer, civil",
	"engineer, maintenance",
	"scientist, research",
	"nurse, children's",
	"surveyor, land",
	"therapist, occupational",
	"programmer, systems",
	"designer, furniture",
	"officer, probation",
	"editor, magazine",
	"farmer",
	"librarian",
	"carpenter",
	"blacksmith",
	"shopkeeper",
	"mechanic",
	"postal worker",
	"barber",
	"innkeeper",
	"fisherman",
	"beekeeper",
	"mail carrier",
	"schoolteacher",
	"grocer",
	"veterinarian",
	"stonemason",
	"seamstress",
	"locksmith",
	"bus driver",
	"bookbinder",
	"radio operator",
	"sign painter",
	"watchmaker",
	"gardener",
}

// adjectives is the demeanor vocabulary for local characters.
var adjectives = []string{
	"affable", "aloof", "amiable", "anxious", "bashful", "bellicose",
	"boisterous", "brooding", "brusque", "cantankerous", "cautious",
	"cheerful", "chatty", "contemplative", "cordial", "crotchety",
	"curious", "cynical", "dignified", "distracted", "dour", "earnest",
	"eccentric", "effusive", "elderly", "energetic", "enigmatic",
	"excitable", "fidgety", "flinty", "forgetful", "friendly", "garrulous",
	"genial", "gloomy", "good-natured", "gruff", "guarded", "hospitable",
	"imposing", "inquisitive", "irritable", "jovial", "kindly", "laconic",
	"leathery", "melancholy", "mild-mannered", "morose", "mysterious",
	"nervous", "obliging", "officious", "ornery", "patient", "peculiar",
	"pensive", "perplexed", "placid", "pleasant", "polite", "preoccupied",
	"quarrelsome", "quiet", "reserved", "restless", "ruddy", "sardonic",
	"shrewd", "skeptical", "sleepy", "soft-spoken", "solemn", "spry",
	"squinting", "stern", "stoic", "sunburned", "suspicious", "taciturn",
	"talkative", "thoughtful", "timid", "unhurried", "watchful", "weary",
	"weathered", "whiskered", "wiry", "wistful",
}

// destinationPhrases are the generic ways the walker refers to where
// he is going; the destination's actual name is an equal-weight
// candidate alongside these.
var destinationPhrases = []string{
	"his destination",
	"the place he seeks",
	"where he is headed",
	"the city ahead",
	"the place he longs to reach",
}
