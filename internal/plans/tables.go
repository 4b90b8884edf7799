package plans

var tables = map[string][]LessonPlan{
	"Math": {
		{
			Title:     "Fraction Rotis",
			Prep:      "Cut paper circles, one per pair of students.",
			Steps:     []string{"Show a whole circle and call it one roti.", "Fold it in half and name each part one half.", "Pairs fold into quarters and label each piece.", "Ask which is bigger: one half or one quarter?"},
			Duration:  "20 min",
			GroupSize: "Pairs",
		},
		{
			Title:     "Bundle and Count",
			Prep:      "Collect about 100 sticks or straws and some rubber bands.",
			Steps:     []string{"Groups count out loose sticks up to 9.", "At 10, tie a bundle and move it to the tens side.", "Call out numbers for groups to build with bundles.", "Write each number on the board as tens and ones."},
			Duration:  "25 min",
			GroupSize: "Groups of 4",
		},
		{
			Title:     "Shop Keeper Game",
			Prep:      "Draw price tags on chits for classroom objects.",
			Steps:     []string{"One student is the shop keeper.", "Buyers pick two items and add the prices.", "The shop keeper checks the total on a slate.", "Swap roles after three customers."},
			Duration:  "30 min",
			GroupSize: "Groups of 5",
		},
		{
			Title:     "Shape Hunt",
			Prep:      "None.",
			Steps:     []string{"Name circle, square, triangle and rectangle.", "Students find each shape in the classroom.", "Each group draws what they found.", "Count sides and corners together."},
			Duration:  "15 min",
			GroupSize: "Groups of 3",
		},
	},
	"Science": {
		{
			Title:     "Sink or Float",
			Prep:      "A bucket of water and small objects: stone, leaf, spoon, cork.",
			Steps:     []string{"Students guess whether each object will sink or float.", "Test each object one at a time.", "Sort objects into two columns on the board.", "Discuss what the floaters have in common."},
			Duration:  "20 min",
			GroupSize: "Whole class",
		},
		{
			Title:     "Shadow Tracking",
			Prep:      "A stick planted in open ground and chalk.",
			Steps:     []string{"Mark the tip of the shadow in the morning.", "Mark it again before lunch and after lunch.", "Compare the lengths and directions.", "Connect the change to the sun's position."},
			Duration:  "10 min, three times",
			GroupSize: "Whole class",
		},
		{
			Title:     "Leaf Detectives",
			Prep:      "Ask students to bring two different leaves.",
			Steps:     []string{"Groups compare shape, edge and veins.", "Make a leaf rubbing with pencil and paper.", "Sort leaves by one rule the group chooses.", "Present the sorting rule to the class."},
			Duration:  "25 min",
			GroupSize: "Groups of 4",
		},
	},
	"English": {
		{
			Title:     "Picture Talk",
			Prep:      "One large picture from a newspaper or textbook.",
			Steps:     []string{"Show the picture and ask what they see.", "Write their words on the board.", "Build one sentence together using three words.", "Each pair writes one more sentence."},
			Duration:  "20 min",
			GroupSize: "Pairs",
		},
		{
			Title:     "Action Verbs Relay",
			Prep:      "Chits with verbs: run, jump, clap, sit, read.",
			Steps:     []string{"A student picks a chit and acts it out.", "The team guesses the verb.", "The guesser writes it on the board.", "Make a sentence with the verb."},
			Duration:  "15 min",
			GroupSize: "Two teams",
		},
		{
			Title:     "Story Circle",
			Prep:      "None.",
			Steps:     []string{"Start a story with one sentence.", "Each student adds one sentence in turn.", "Write the finished story on the board.", "Underline all the naming words."},
			Duration:  "20 min",
			GroupSize: "Circle of 8 to 10",
		},
	},
	"Hindi": {
		{
			Title:     "Matra Match",
			Prep:      "Letter cards and matra cards cut from old notebooks.",
			Steps:     []string{"Show a letter and a matra card.", "Students read the sound aloud.", "Groups make three words using the pair.", "Read the words to the class."},
			Duration:  "20 min",
			GroupSize: "Groups of 4",
		},
		{
			Title:     "Poem Actions",
			Prep:      "Pick a short poem from the textbook.",
			Steps:     []string{"Read the poem aloud twice.", "Groups invent an action for each line.", "Perform the poem with actions.", "Ask the meaning of two new words."},
			Duration:  "25 min",
			GroupSize: "Groups of 5",
		},
	},
	"Social Studies": {
		{
			Title:     "Map My School",
			Prep:      "Chart paper and crayons.",
			Steps:     []string{"Walk around the school building.", "Groups draw the classrooms, gate and playground.", "Add a simple key for the symbols.", "Mark north using the morning sun."},
			Duration:  "30 min",
			GroupSize: "Groups of 4",
		},
		{
			Title:     "Community Helpers Role Play",
			Prep:      "Chits naming helpers: farmer, doctor, postman, shopkeeper.",
			Steps:     []string{"Each group picks a helper.", "Plan a short scene showing their work.", "Perform for the class.", "Discuss how each helper supports the village."},
			Duration:  "25 min",
			GroupSize: "Groups of 4",
		},
	},
	DefaultTable: {
		{
			Title:     "Think, Pair, Share",
			Prep:      "Write one open question on the board.",
			Steps:     []string{"Students think quietly for one minute.", "Discuss the answer with a partner.", "Pairs share with the class.", "Summarise the best ideas on the board."},
			Duration:  "15 min",
			GroupSize: "Pairs",
		},
		{
			Title:     "Exit Ticket",
			Prep:      "Small slips of paper.",
			Steps:     []string{"At the end of class ask one question about today's topic.", "Students write a short answer.", "Collect slips at the door.", "Sort them to plan tomorrow's revision."},
			Duration:  "10 min",
			GroupSize: "Individual",
		},
		{
			Title:     "Gallery Walk",
			Prep:      "Stick four questions on chart paper around the room.",
			Steps:     []string{"Groups start at one chart.", "Write an answer and move on after three minutes.", "Read what other groups wrote.", "Discuss the most surprising answer."},
			Duration:  "20 min",
			GroupSize: "Groups of 4",
		},
	},
}
