package seed

var (
	firstNames = []string{"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Christopher", "Karen", "Charles", "Lisa", "Daniel", "Nancy", "Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley", "Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna", "Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa", "Timothy", "Deborah"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter", "Roberts"}

	cities  = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose"}
	states  = []string{"NY", "CA", "IL", "TX", "AZ", "PA", "TX", "CA", "TX", "CA"}
	streets = []string{"Main St", "Oak Ave", "Elm St", "Park Blvd", "Cedar Ln", "Maple Dr", "Pine Rd", "Washington Ave", "Lake St", "Hill Rd"}

	insuranceProviders = []string{"BlueCross BlueShield", "Aetna", "UnitedHealth", "Cigna", "Humana", "Kaiser Permanente"}
	allergyPool        = []string{"Penicillin", "Sulfa", "Aspirin", "Ibuprofen", "Codeine", "Latex", "Peanuts", "Shellfish", "None"}
	conditionPool      = []string{"Hypertension", "Type 2 Diabetes", "Asthma", "COPD", "Heart Failure", "Atrial Fibrillation", "Chronic Kidney Disease", "Depression", "Anxiety", "Osteoarthritis", "Hypothyroidism", "GERD", "Hyperlipidemia", "Obesity", "None"}
	rooms              = []string{"Room 101", "Room 102", "Room 103", "Room 104", "Room 105", "Room 201", "Room 202", "Room 203", "Telehealth"}
	appointmentReasons = []string{"Annual physical", "Follow-up visit", "Blood pressure check", "Diabetes management", "Medication review", "Lab results review", "Chest pain evaluation", "Shortness of breath", "Joint pain", "Headache", "Back pain", "Skin rash", "Cough/cold", "Wellness check"}

	noteTitles = []string{
		"Follow-up Visit Note",
		"Annual Physical Examination",
		"Medication Adjustment",
		"Lab Results Discussion",
		"Referral to Specialist",
		"Post-Procedure Follow-up",
		"Chronic Disease Management",
		"Acute Visit Note",
	}
	noteBodies = []string{
		"Patient presents for routine follow-up. Vitals stable. Blood pressure well controlled on current medication regimen. Continue current treatment plan. Follow up in 3 months.",
		"Comprehensive annual physical. All screening tests up to date. Discussed diet and exercise. Patient reports good compliance with medications. No new complaints.",
		"Patient reports increased fatigue and shortness of breath with exertion. Ordered CBC, BMP, and chest X-ray. Will review results at next visit. Adjusted medication dosage.",
		"Reviewed recent lab work. HbA1c improved from 8.2 to 7.4. Continue current diabetes management. Encouraged patient to maintain dietary modifications.",
		"Patient seen for chronic knee pain. Conservative management has been ineffective. Discussed options including physical therapy referral and possible orthopedic consultation.",
		"Post-surgical follow-up. Wound healing well. No signs of infection. Patient tolerating pain medication. Cleared for gradual return to normal activities.",
		"Blood pressure elevated at 158/92 despite current medication. Adding second antihypertensive. Diet counseling provided. Recheck in 2 weeks.",
		"Patient reports persistent cough for 3 weeks. No fever. Lungs clear on auscultation. Likely post-nasal drip. Started on nasal corticosteroid. Follow up if not improved in 2 weeks.",
	}
)
