package seed

// seedWeekAllocations holds the historical allocations of the week starting 31.03.25,
// one entry per day in zone order (zone_1..zone_11).
var seedWeekAllocations = []struct {
	date      string
	day       string
	stage     []string
	sanchalan []string
}{
	{
		date:      "31.03.25",
		day:       "Monday",
		stage:     []string{"Sheetal Dola Ji", "Geeta Bhatt Ji", "Dinesh Kothari Ji", "Sunita Nirankari Ji", "Katait Ji", "Satyam Ji", "Rupa Ji", "Anil Arya Ji", "Sunil Ji, E.C. Road", "", "Gaya Prasad Ji"},
		sanchalan: []string{"Anita Sharma Ji", "Jaykrit Negi Ji", "Pramod Ji", "Nisha Ji", "Jagendra Singh Ji", "Kaushalya Ji", "Tanisha Ji", "Lata Thapa Ji", "Chhavi Ji", "", "Varsha Ji"},
	},
	{
		date:      "01.04.25",
		day:       "Tuesday",
		stage:     []string{"Badoni Ji", "Pinky Mangalwan Ji", "Mukesh Rawat Ji", "K.R. Bharti Ji", "Kashiram Nautiyal Ji", "Atul Bhatt Ji", "Ashok Kamboj Ji", "Deepa Bisht Ji", "Khanduri Ji", "", "Rakhi Ji"},
		sanchalan: []string{"Ujjwal Ji", "Abhinav Kaintura Ji", "Neetu Shahi Ji", "Aarti Ji", "Meena Gusain Ji", "Bhuvaneshwari Ji", "Om Singh Ji", "Suman Gurung Ji", "Chhotelal Ji", "", "Divya Ji"},
	},
	{
		date:      "02.04.25",
		day:       "Wednesday",
		stage:     []string{"Vinod Ji", "Dayal Singh Negi Ji", "Shashi Kshetri Ji", "Sheila Rana Ji", "Anand Singh Ji", "Ravi Ji", "Jhaneshwar Ji", "S.S. Rana Ji", "Ranjeet Rawat Ji", "Sushila Rawat Ji", "Rajiv Ji"},
		sanchalan: []string{"Bhupendra Singh Ji", "Shubham Ji", "Himanshu Ji", "Shubham Ji", "Bharat Mall Ji", "Bimla Rana Ji", "Yashpal Ji", "Alka Ji", "Shridhar Ji", "Rajendra Ji", "Dhanpal Ji"},
	},
	{
		date:      "03.04.25",
		day:       "Thursday",
		stage:     []string{"Sachin Panwar Ji", "Madan Singh Bisht Ji", "Bikar Das Ji", "Nanna Ji", "Santosh Sarna Ji", "Prem Singh Thapa Ji", "S.S. Negi Ji", "Samay Singh Ji", "Rajkishore Ji", "Doval Ji", "Guddu Chamoli Ji"},
		sanchalan: []string{"Gulshan Ji, Press", "Charu Ji", "Prerna Singh Ji", "Hemlata Ji", "Sheetal Ji", "Sushila Butola Ji", "Chhatar Singh Ji", "Sachin Kshetri Ji", "Ayush Ji", "Kirti Ji", "Ravina Ji"},
	},
	{
		date:      "04.04.25",
		day:       "Friday",
		stage:     []string{"Rekha Bhatt Ji", "Ashok Ji, Police Line", "Dayanand Nautiyal Ji", "Vijay Rawat Ji", "Dhuliya Ji", "K.S. Negi Ji", "Sarla Yadav Ji", "Manohar Bhatt Ji", "G.S. Pundir Ji", "", "Jaynandan Ji"},
		sanchalan: []string{"Anu Kamboj Ji", "Sumit Shah Ji", "Niharika Yadav Ji", "Anita Ji", "Arvind Pal Ji", "Sunita Ji", "Renu Ji", "Hemant Ji", "Gopendra Rawat Ji", "", "Reena Ji"},
	},
	{
		date:      "05.04.25",
		day:       "Saturday",
		stage:     []string{"Rajiv Ji", "Anand Singh Ji", "Gulshan Ji, Sarafa", "Saklani Ji", "Yogendra Bhandari Ji", "Usha Arora Ji", "Devendra Singh Ji", "Jeevan Ji", "Amar Lal Shah Ji", "", "Om Prakash Ji"},
		sanchalan: []string{"Sanjay Kshetri Ji", "Diksha Ji", "Simran Moga Ji", "Varsha Ji", "Dolly Bahukhandi Ji", "Shakuntala Ji", "Arjun Ji", "Dr. Tyagi Ji", "Vikram Singh Pundir Ji", "", "Savita Ji"},
	},
}

// defaultStageVolunteers seeds the stage pool on first load
var defaultStageVolunteers = []string{
	"Amar Lal Shah Ji",
	"Anand Singh Ji",
	"Anil Arya Ji",
	"Ashok Ji, Police Line",
	"Ashok Kamboj Ji",
	"Atul Bhatt Ji",
	"Badoni Ji",
	"Bikar Das Ji",
	"Dayal Singh Negi Ji",
	"Dayanand Nautiyal Ji",
	"Deepa Bisht Ji",
	"Devendra Singh Ji",
	"Dhuliya Ji",
	"Dinesh Kothari Ji",
	"Doval Ji",
	"G.S. Pundir Ji",
	"Gaya Prasad Ji",
	"Geeta Bhatt Ji",
	"Guddu Chamoli Ji",
	"Gulshan Ji, Sarafa",
	"Jaynandan Ji",
	"Jeevan Ji",
	"Jhaneshwar Ji",
	"K.R. Bharti Ji",
	"K.S. Negi Ji",
	"Kashiram Nautiyal Ji",
	"Katait Ji",
	"Khanduri Ji",
	"Madan Singh Bisht Ji",
	"Manohar Bhatt Ji",
	"Mukesh Rawat Ji",
	"Nanna Ji",
	"Om Prakash Ji",
	"Pinky Mangalwan Ji",
	"Prem Singh Thapa Ji",
	"Rajiv Ji",
	"Rajkishore Ji",
	"Rakhi Ji",
	"Ranjeet Rawat Ji",
	"Ravi Ji",
	"Rekha Bhatt Ji",
	"Rupa Ji",
	"S.S. Negi Ji",
	"S.S. Rana Ji",
	"Sachin Panwar Ji",
	"Saklani Ji",
	"Samay Singh Ji",
	"Santosh Sarna Ji",
	"Sarla Yadav Ji",
	"Satyam Ji",
	"Shashi Kshetri Ji",
	"Sheetal Dola Ji",
	"Sheila Rana Ji",
	"Sunil Ji, E.C. Road",
	"Sunita Nirankari Ji",
	"Sushila Rawat Ji",
	"Usha Arora Ji",
	"Vijay Rawat Ji",
	"Vinod Ji",
	"Yogendra Bhandari Ji",
}

// defaultSanchalanVolunteers seeds the sanchalan pool on first load
var defaultSanchalanVolunteers = []string{
	"Aarti Ji",
	"Abhinav Kaintura Ji",
	"Alka Ji",
	"Anita Ji",
	"Anita Sharma Ji",
	"Anu Kamboj Ji",
	"Arjun Ji",
	"Arvind Pal Ji",
	"Ayush Ji",
	"Bharat Mall Ji",
	"Bhupendra Singh Ji",
	"Bhuvaneshwari Ji",
	"Bimla Rana Ji",
	"Charu Ji",
	"Chhatar Singh Ji",
	"Chhavi Ji",
	"Chhotelal Ji",
	"Dhanpal Ji",
	"Diksha Ji",
	"Divya Ji",
	"Dolly Bahukhandi Ji",
	"Dr. Tyagi Ji",
	"Gopendra Rawat Ji",
	"Gulshan Ji, Press",
	"Hemant Ji",
	"Hemlata Ji",
	"Himanshu Ji",
	"Jagendra Singh Ji",
	"Jaykrit Negi Ji",
	"Kaushalya Ji",
	"Kirti Ji",
	"Lata Thapa Ji",
	"Meena Gusain Ji",
	"Neetu Shahi Ji",
	"Niharika Yadav Ji",
	"Nisha Ji",
	"Om Singh Ji",
	"Pramod Ji",
	"Prerna Singh Ji",
	"Rajendra Ji",
	"Ravina Ji",
	"Reena Ji",
	"Renu Ji",
	"Sachin Kshetri Ji",
	"Sanjay Kshetri Ji",
	"Savita Ji",
	"Shakuntala Ji",
	"Sheetal Ji",
	"Shridhar Ji",
	"Shubham Ji",
	"Simran Moga Ji",
	"Suman Gurung Ji",
	"Sumit Shah Ji",
	"Sunita Ji",
	"Sushila Butola Ji",
	"Tanisha Ji",
	"Ujjwal Ji",
	"Varsha Ji",
	"Vikram Singh Pundir Ji",
	"Yashpal Ji",
}
