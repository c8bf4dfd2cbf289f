package report

// termsTitle and termsClauses are the fixed bilingual legal block
// printed on every agreement, reproduced verbatim in Urdu script.
const termsTitle = "شرائط و ضوابط"

var termsClauses = []string{
	"میں اقرار کرتا ہوں کہ میں نے گاڑی درست حالت میں اور تمام لوازمات کے ساتھ وصول کی ہے۔",
	"کرایہ کی مدت کے دوران کسی بھی قسم کے ٹریفک چالان، حادثہ یا فنی خرابی کی صورت میں تمام تر اخراجات اور ذمہ داری مجھ پر ہوگی۔",
	"میں مقررہ وقت پر گاڑی واپس کرنے کا پابند ہوں، بصورت دیگر کمپنی کو اضافی کرایہ وصول کرنے اور قانونی کارروائی کرنے کا مکمل حق حاصل ہے۔",
	"گاڑی کو کسی دوسرے شخص کے حوالے کرنا یا کرایہ پر دینا سختی سے منع ہے۔",
	"کمپنی کسی بھی وقت معاہدہ ختم کرنے کا حق محفوظ رکھتی ہے۔",
}

// StaticTerms serves the built-in terms block.
type StaticTerms struct{}

func (StaticTerms) Title() string { return termsTitle }

func (StaticTerms) Clauses() []string {
	out := make([]string, len(termsClauses))
	copy(out, termsClauses)
	return out
}
