package stopwords

// englishWords is the common English list. The empty string is included so
// a degenerate empty token is always treated as noise.
var englishWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
	"of", "at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from",
	"up", "down", "in", "out", "on", "off", "over", "under",
	"again", "further", "then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
	"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
	"s", "t", "can", "will", "just", "don", "should", "now",
	"d", "ll", "m", "o", "re", "ve", "y",
	"ain", "aren", "couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn",
	"ma", "mightn", "mustn", "needn", "shan", "shouldn", "wasn", "weren", "won",
	"",
}

// earlyModernWords are pronouns, verb forms and adverbs of Elizabethan
// English. Apostrophe forms are listed as they appear in scripts.
var earlyModernWords = []string{
	"art", "doth", "dost", "'ere", "hast", "hath", "hence", "hither", "nigh", "oft",
	"should'st", "thither", "tither", "thee", "thou", "thine", "thy",
	"'tis", "'twas", "wast", "whence", "wherefore", "whereto", "withal",
	"would'st", "ye", "yon", "yonder",
}

// webNoiseWords show up in paragraph text pulled from web pages.
var webNoiseWords = []string{
	"click", "clickable", "clicked", "clicking",
	"button", "link", "menu",
	"redirected", "redirect", "redirecting",
	"page", "pages", "website", "site",
	"home", "homepage",
	"search", "searching", "searched",
	"loading", "loaded", "load", "loads",
	"retrieved", "archived", "isbn", "doi", "citation", "needed",
}
