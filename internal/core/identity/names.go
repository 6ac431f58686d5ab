package identity

// Name pools are keyed by cultural region, not nationality: many
// nationalities share a naming tradition. Names are transliterated to
// English letters.

// Region keys for the name pools.
const (
	regionSaudi       = "saudi"
	regionEgypt       = "egypt"
	regionPakistan    = "pakistan"
	regionIndiaMuslim = "india_muslim"
	regionBangladesh  = "bangladesh"
	regionIndonesia   = "indonesia"
	regionMalaysia    = "malaysia"
	regionTurkey      = "turkey"
	regionIran        = "iran"
	regionWestAfrica  = "nigeria_west_africa"
	regionNorthAfrica = "north_africa"
	regionSudanHorn   = "sudan_somalia"
	regionLevant      = "levant"
	regionCentralAsia = "central_asia"
	// regionFallback covers converts and any nationality without a
	// dedicated pool. Keeps the nationality->pool mapping total.
	regionFallback = "convert_other"
)

type namePool struct {
	MaleFirst   []string
	FemaleFirst []string
	Last        []string
}

var namePools = map[string]namePool{
	regionSaudi: {
		MaleFirst: []string{
			"Mohammed", "Abdullah", "Abdulrahman", "Faisal", "Khalid", "Sultan",
			"Turki", "Bandar", "Saud", "Waleed", "Fahad", "Nasser", "Saleh",
			"Hamad", "Saad", "Tariq", "Adel", "Mansour", "Badr", "Nawaf",
			"Abdulaziz", "Mishal", "Majed", "Naif", "Bader", "Thamer",
			"Rakan", "Yazeed", "Zayed", "Talal",
		},
		FemaleFirst: []string{
			"Fatimah", "Noura", "Sarah", "Maha", "Abeer", "Huda", "Layla",
			"Amina", "Reem", "Dalal", "Munira", "Hajar", "Asma", "Wafa",
			"Basma", "Lamia", "Ghada", "Hessa", "Lulwa", "Alanoud",
			"Mashael", "Shaikha", "Jawahir", "Atheer", "Deema", "Sultana",
			"Azzah", "Mounira", "Salwa", "Najla",
		},
		Last: []string{
			"Al-Ghamdi", "Al-Harbi", "Al-Shehri", "Al-Zahrani", "Al-Qahtani",
			"Al-Dosari", "Al-Otaibi", "Al-Mutairi", "Al-Rashidi", "Al-Shamri",
			"Al-Subaie", "Al-Anazi", "Al-Hajri", "Al-Malki", "Al-Ahmadi",
			"Al-Khaldi", "Al-Yami", "Al-Bishi", "Al-Asmari", "Al-Thubaiti",
			"Al-Sahli", "Al-Tamimi", "Al-Dawsari", "Al-Johani", "Al-Sulami",
			"Al-Balawi", "Al-Enazi", "Al-Hamdan", "Al-Faifi", "Al-Shahrani",
		},
	},
	regionEgypt: {
		MaleFirst: []string{
			"Mohamed", "Ahmed", "Mahmoud", "Mustafa", "Ibrahim", "Hassan",
			"Hussein", "Youssef", "Karim", "Tarek", "Amr", "Khaled", "Omar",
			"Adel", "Sherif", "Hossam", "Sameh", "Ashraf", "Gamal", "Emad",
			"Ehab", "Wael", "Alaa", "Tamer", "Hatem", "Medhat", "Nabil",
			"Hany", "Samir", "Magdy",
		},
		FemaleFirst: []string{
			"Fatma", "Aisha", "Mariam", "Heba", "Dina", "Amira", "Sahar",
			"Samira", "Nesma", "Eman", "Nourhan", "Rania", "Yasmin", "Mai",
			"Soha", "Mona", "Nagwa", "Naglaa", "Sawsan", "Ghada",
			"Abeer", "Hala", "Noha", "Lobna", "Hanaa", "Amal", "Manal",
			"Inaam", "Rehab", "Doaa",
		},
		Last: []string{
			"Hassan", "Hussein", "Mohamed", "Ibrahim", "Ali", "Ahmed",
			"Mahmoud", "Mostafa", "Abdel-Fattah", "El-Sayed", "Attia", "Farag",
			"Osman", "Mansour", "Gamal", "Naguib", "Younis", "Ramadan",
			"Shehata", "Soliman", "Abdallah", "Tawfik", "Badawi", "Metwally",
			"Helmy", "Abdel-Nasser", "Fawzy", "Hafez", "Rizk", "Barakat",
		},
	},
	regionPakistan: {
		MaleFirst: []string{
			"Mohammad", "Ahmed", "Ali", "Usman", "Hassan", "Bilal", "Imran",
			"Asad", "Tariq", "Saeed", "Rizwan", "Farhan", "Shahid", "Kamran",
			"Zubair", "Junaid", "Irfan", "Adnan", "Salman", "Hamza",
			"Waqas", "Faisal", "Amir", "Waseem", "Nadeem", "Kashif",
			"Naveed", "Zahid", "Arshad", "Sajid",
		},
		FemaleFirst: []string{
			"Fatima", "Ayesha", "Khadija", "Zainab", "Mariam", "Sana", "Hina",
			"Nadia", "Bushra", "Saima", "Rabia", "Uzma", "Asma", "Shabana",
			"Parveen", "Nasreen", "Tahira", "Samina", "Rukhsar", "Sadia",
			"Mehwish", "Farah", "Amna", "Iqra", "Sobia", "Nosheen",
			"Rubina", "Shazia", "Anila", "Farzana",
		},
		Last: []string{
			"Khan", "Ahmed", "Ali", "Hussain", "Shah", "Malik", "Iqbal",
			"Siddiqui", "Qureshi", "Butt", "Chaudhry", "Sheikh", "Mirza",
			"Abbasi", "Nawaz", "Hashmi", "Bhatti", "Aslam", "Raza", "Javed",
			"Mughal", "Niazi", "Awan", "Gilani", "Bajwa", "Gondal",
			"Afridi", "Khattak", "Yousafzai", "Durrani",
		},
	},
	regionIndiaMuslim: {
		MaleFirst: []string{
			"Mohammad", "Ahmed", "Ali", "Usman", "Hassan", "Bilal", "Imran",
			"Asad", "Tariq", "Saeed", "Rizwan", "Farhan", "Shahid", "Kamran",
			"Zubair", "Junaid", "Irfan", "Adnan", "Salman", "Hamza",
			"Arif", "Riyaz", "Shakeel", "Anwar", "Altaf", "Musheer",
			"Sohail", "Tanveer", "Waheed", "Naeem",
		},
		FemaleFirst: []string{
			"Fatima", "Ayesha", "Khadija", "Zainab", "Mariam", "Sana", "Hina",
			"Nadia", "Bushra", "Saima", "Rabia", "Uzma", "Asma", "Shabana",
			"Parveen", "Nasreen", "Tahira", "Samina", "Rukhsar", "Sadia",
			"Reshma", "Mumtaz", "Shahnaz", "Ruksana", "Dilshad", "Tabassum",
			"Nargis", "Gulshan", "Yasmeen", "Nafisa",
		},
		Last: []string{
			"Khan", "Ahmed", "Sheikh", "Ansari", "Siddiqui", "Qureshi",
			"Pathan", "Shaikh", "Sayyid", "Hashmi", "Mirza", "Rizvi",
			"Farooqui", "Nadvi", "Idrisi", "Baig", "Naqvi", "Momin", "Beg",
			"Kidwai", "Mansoori", "Nomani", "Quadri", "Usmani", "Dehlvi",
			"Lucknowi", "Azmi", "Falahi", "Islahi", "Madani",
		},
	},
	regionBangladesh: {
		MaleFirst: []string{
			"Mohammed", "Abdul", "Rahman", "Hasan", "Karim", "Rahim", "Habib",
			"Rashed", "Shahidul", "Aminul", "Saiful", "Nurul", "Mizanur",
			"Fazlul", "Ashraf", "Zahir", "Rafiq", "Mofiz", "Jahangir",
			"Shahadat", "Monir", "Nazrul", "Shafiq", "Delwar", "Mostafiz",
			"Mahbub", "Azizul", "Abul", "Sohel", "Liton",
		},
		FemaleFirst: []string{
			"Fatema", "Ayesha", "Sultana", "Khatun", "Akhter", "Hasina",
			"Nasreen", "Rehana", "Razia", "Monira", "Taslima", "Shirin",
			"Dilara", "Farida", "Hosna", "Nurjahan", "Morsheda", "Anjuman",
			"Rahima", "Amena", "Halima", "Asma", "Kulsum", "Rokeya",
			"Sufia", "Jahanara", "Mst. Rabeya", "Salma", "Shahana", "Bilkis",
		},
		Last: []string{
			"Rahman", "Islam", "Hossain", "Ahmed", "Uddin", "Miah", "Chowdhury",
			"Alam", "Haque", "Bhuiyan", "Talukdar", "Sarkar", "Khan",
			"Siddique", "Kamal", "Akbar", "Zaman", "Reza", "Kabir", "Hussain",
			"Mondal", "Mollah", "Bepari", "Howlader", "Biswas",
			"Sikder", "Majumder", "Prodhan", "Gazi", "Munshi",
		},
	},
	regionIndonesia: {
		MaleFirst: []string{
			"Muhammad", "Ahmad", "Abdul", "Ibrahim", "Yusuf", "Ismail",
			"Ridwan", "Hidayat", "Wahyu", "Rizki", "Agus", "Hendra", "Arif",
			"Fajar", "Surya", "Ramadhan", "Dedi", "Bambang", "Eko",
			"Firmansyah", "Budi", "Andi", "Rudi", "Dani", "Iwan",
			"Joko", "Hendri", "Sigit", "Hadi", "Bayu",
		},
		FemaleFirst: []string{
			"Siti", "Nur", "Fatimah", "Aisyah", "Dewi", "Sri", "Rina",
			"Wati", "Yuni", "Fitri", "Indah", "Lestari", "Putri", "Intan",
			"Ayu", "Dian", "Nisa", "Ratna", "Eka", "Wulan",
			"Ani", "Tuti", "Sari", "Mega", "Ningsih", "Rahmawati",
			"Sulistyowati", "Yanti", "Umi", "Mulyani",
		},
		Last: []string{
			"Siregar", "Harahap", "Nasution", "Lubis", "Prasetyo", "Wijaya",
			"Santoso", "Hidayat", "Saputra", "Nugroho", "Wibowo", "Setiawan",
			"Purnomo", "Suryadi", "Firmansyah", "Hermawan", "Ramadhan",
			"Gunawan", "Kurniawan", "Susanto", "Suharto", "Sutrisno",
			"Wahyudi", "Handoko", "Supriyadi", "Widodo", "Mulyono",
			"Hartono", "Darmawan", "Iskandar",
		},
	},
	regionMalaysia: {
		MaleFirst: []string{
			"Muhammad", "Ahmad", "Abdullah", "Ismail", "Ibrahim", "Yusuf",
			"Mohd", "Azman", "Hakim", "Farid", "Shahrul", "Azhar", "Rizal",
			"Hafiz", "Zulkifli", "Aiman", "Fikri", "Nabil", "Syafiq", "Haziq",
			"Azmi", "Hamdan", "Rosli", "Zainal", "Kamal", "Razak",
			"Hanafi", "Zainol", "Shukri", "Bakar",
		},
		FemaleFirst: []string{
			"Siti", "Nur", "Fatimah", "Aisyah", "Aminah", "Zarina", "Noor",
			"Haslinda", "Rohana", "Faridah", "Noriah", "Zurina", "Salina",
			"Rashidah", "Hamidah", "Sharifah", "Kamariah", "Mazlina",
			"Ramlah", "Habibah", "Norhayati", "Asmah", "Rosnah", "Mariam",
			"Jamilah", "Azizah", "Rokiah", "Normah", "Zalina", "Hasanah",
		},
		Last: []string{
			"Abdullah", "Ibrahim", "Ahmad", "Hassan", "Ismail", "Osman",
			"Yusof", "Zainal", "Idris", "Rahman", "Hamid", "Rashid",
			"Ariffin", "Sulaiman", "Jamaluddin", "Kamaruddin", "Baharuddin",
			"Nooruddin", "Shamsuddin", "Mohd", "Mohamad", "Hashim",
			"Othman", "Razali", "Nordin", "Salleh", "Daud", "Yaacob",
			"Talib", "Aziz",
		},
	},
	regionTurkey: {
		MaleFirst: []string{
			"Mehmet", "Ahmet", "Mustafa", "Ali", "Hasan", "Ibrahim", "Murat",
			"Yusuf", "Osman", "Kemal", "Bayram", "Fatih", "Serkan", "Burak",
			"Emre", "Cengiz", "Selim", "Bulent", "Erhan", "Ozkan",
			"Recep", "Huseyin", "Ismail", "Suleyman", "Ramazan", "Omer",
			"Cemal", "Halil", "Orhan", "Turgut",
		},
		FemaleFirst: []string{
			"Fatma", "Ayse", "Emine", "Hatice", "Zeynep", "Elif", "Merve",
			"Betul", "Kubra", "Havva", "Esra", "Tugba", "Nurcan", "Gulsen",
			"Sevgi", "Aysegul", "Ozlem", "Sibel", "Derya", "Sema",
			"Nurten", "Sultan", "Hacer", "Songul", "Gulizar", "Hanife",
			"Fadime", "Rukiye", "Saliha", "Meryem",
		},
		Last: []string{
			"Yilmaz", "Kaya", "Demir", "Celik", "Ozturk", "Aydin", "Erdogan",
			"Arslan", "Dogan", "Kilic", "Aslan", "Ozdemir", "Yildiz",
			"Yildirim", "Ozer", "Aksoy", "Polat", "Sahin", "Korkmaz", "Tekin",
			"Coskun", "Bayrak", "Kaplan", "Taskiran", "Bulut", "Gunes",
			"Koc", "Turan", "Sezer", "Unal",
		},
	},
	regionIran: {
		MaleFirst: []string{
			"Mohammad", "Ali", "Hossein", "Hassan", "Reza", "Mehdi", "Amir",
			"Javad", "Saeed", "Hamid", "Ahmad", "Mohsen", "Mostafa", "Majid",
			"Ebrahim", "Naser", "Masoud", "Behzad", "Omid", "Karim",
			"Farhad", "Parviz", "Dariush", "Babak", "Siavash", "Nima",
			"Peyman", "Shahram", "Alireza", "Morteza",
		},
		FemaleFirst: []string{
			"Fatimeh", "Zahra", "Maryam", "Narges", "Sakineh", "Somayeh",
			"Leila", "Mina", "Parvin", "Akram", "Masoumeh", "Nasrin",
			"Tahmineh", "Elham", "Azam", "Shahin", "Shohreh", "Mahboubeh",
			"Kobra", "Fereshteh", "Halimeh", "Fatemeh", "Sedigheh",
			"Roghayeh", "Marziyeh", "Nahid", "Afsaneh", "Shirin", "Golnar",
			"Faranak",
		},
		Last: []string{
			"Mohammadi", "Hosseini", "Rezaei", "Ahmadi", "Hashemi", "Karimi",
			"Mousavi", "Moradi", "Alavi", "Jafari", "Rahimi", "Sadeghi",
			"Bahrami", "Shirazi", "Tehrani", "Esfahani", "Kazemi", "Fallahi",
			"Tabrizi", "Khorasani", "Abbasi", "Gharibzadeh", "Mansouri",
			"Ebrahimi", "Rostami", "Noori", "Zamani", "Omidi", "Tayebi",
			"Heidari",
		},
	},
	regionWestAfrica: {
		MaleFirst: []string{
			"Muhammad", "Ibrahim", "Abubakar", "Usman", "Yusuf", "Musa",
			"Suleiman", "Abdullahi", "Shehu", "Idris", "Aliyu", "Aminu",
			"Garba", "Ismail", "Lawal", "Kabiru", "Nasiru", "Bashir",
			"Danladi", "Bello", "Sanusi", "Auwal", "Haruna", "Nuhu",
			"Adamu", "Salisu", "Hamisu", "Rabiu", "Farouk", "Dahiru",
		},
		FemaleFirst: []string{
			"Fatima", "Aisha", "Halima", "Zainab", "Maryam", "Hadiza",
			"Bilkisu", "Amina", "Hauwa", "Rabi", "Salamatu", "Sadiya",
			"Nafisa", "Ruqayya", "Jamila", "Sakina", "Ummu", "Lubabatu",
			"Talatu", "Balkisu", "Hajara", "Barira", "Hassana", "Asiya",
			"Asmau", "Khadija", "Habiba", "Laraba", "Safiya", "Dije",
		},
		Last: []string{
			"Abubakar", "Ibrahim", "Mohammed", "Bello", "Yusuf", "Suleiman",
			"Musa", "Danladi", "Abdullahi", "Shehu", "Bala", "Adamu", "Garba",
			"Aliyu", "Ismail", "Lawal", "Tanko", "Jibrin", "Saidu", "Umar",
			"Waziri", "Alkali", "Dikko", "Maigari", "Tukur", "Gwandu",
			"Kafanchan", "Kazaure", "Ringim", "Fagge",
		},
	},
	regionNorthAfrica: {
		MaleFirst: []string{
			"Mohamed", "Ahmed", "Youcef", "Mustapha", "Karim", "Abdel",
			"Rachid", "Said", "Hamid", "Noureddine", "Boualem", "Djamel",
			"Farid", "Larbi", "Mounir", "Samir", "Sofiane", "Redouane",
			"Abdelkader", "Nadir", "Brahim", "Hicham", "Amine", "Yassine",
			"Mehdi", "Bilal", "Adel", "Mourad", "Tayeb", "Lahcen",
		},
		FemaleFirst: []string{
			"Fatima", "Amina", "Khadija", "Meriem", "Aicha", "Yamina",
			"Djamila", "Houria", "Malika", "Zohra", "Samia", "Naima",
			"Farida", "Souad", "Leila", "Hayat", "Karima", "Nadia",
			"Rachida", "Safia", "Latifa", "Ghania", "Hassiba", "Wahiba",
			"Nacera", "Fatiha", "Siham", "Lamia", "Sabrina", "Imane",
		},
		Last: []string{
			"Benali", "Brahim", "Boumediene", "Khelif", "Rahmani", "Saidi",
			"Boudiaf", "Belkacem", "Amrani", "Bensalem", "Mebarki", "Hadjadj",
			"Zidane", "Madani", "Guerrouj", "Alaoui", "Bennani", "Berrada",
			"Idrissi", "Tazi", "Fassi", "Hajji", "Lamrani", "Cherkaoui",
			"Mouline", "Kettani", "Benjelloun", "Senhaji", "Filali", "Tahiri",
		},
	},
	regionSudanHorn: {
		MaleFirst: []string{
			"Mohammed", "Ahmed", "Ibrahim", "Hassan", "Ali", "Osman",
			"Abdullah", "Adam", "Musa", "Hamid", "Abdalla", "Mahgoub",
			"Bashir", "Babiker", "Khalil", "Salih", "Yousif", "Ismail",
			"Abdi", "Nur", "Abdirashid", "Abdikarim", "Dahir", "Guled",
			"Jama", "Farah", "Warsame", "Sharif", "Elyas", "Mahdi",
		},
		FemaleFirst: []string{
			"Fatima", "Aisha", "Maryam", "Amina", "Khadija", "Hawa", "Suad",
			"Zeinab", "Samia", "Nawal", "Asma", "Halima", "Fawzia", "Ihsan",
			"Nagla", "Rasha", "Nadia", "Safiya", "Habiba", "Amaal",
			"Hodan", "Ayan", "Sahra", "Nimco", "Fardowsa", "Ubah",
			"Salma", "Zahara", "Marwa", "Bushra",
		},
		Last: []string{
			"Ahmed", "Mohammed", "Ibrahim", "Hassan", "Ali", "Osman",
			"Abdullah", "Adam", "Musa", "Hamid", "Abdalla", "Bashir",
			"Babiker", "Khalil", "Salih", "Yousif", "Mahgoub", "Dafalla",
			"Elhaj", "Elsheikh", "Abdi", "Mohamud", "Aden", "Warsame",
			"Hersi", "Yusuf", "Omar", "Farah", "Egal", "Elmi",
		},
	},
	regionLevant: {
		MaleFirst: []string{
			"Mohammed", "Ahmad", "Ali", "Omar", "Khalil", "Nasser", "Yousef",
			"Samir", "Bassam", "Mazen", "Fadi", "Rami", "Ziad", "Walid",
			"Hani", "Ghassan", "Samer", "Bilal", "Anas", "Hamzah",
			"Marwan", "Khaldoun", "Adnan", "Nizar", "Munir", "Raed",
			"Luay", "Amjad", "Haytham", "Qasim",
		},
		FemaleFirst: []string{
			"Fatima", "Aisha", "Maryam", "Huda", "Amina", "Reem", "Layla",
			"Nour", "Dina", "Safa", "Rana", "Lina", "Ghada", "Wafa", "Suha",
			"Haneen", "Rawan", "Abeer", "Sawsan", "Nisreen",
			"Manal", "Taghreed", "Maysoun", "Rula", "Nawal", "Sahar",
			"Lubna", "Hana", "Iman", "Shireen",
		},
		Last: []string{
			"Al-Masri", "Al-Khatib", "Al-Husseini", "Al-Khalidi", "Haddad",
			"Nassar", "Sabbagh", "Darwish", "Qasim", "Hamdan", "Salim",
			"Barghouti", "Tamimi", "Nabulsi", "Turk", "Awad", "Jabari",
			"Natsheh", "Amr", "Saadeh", "Khoury", "Bishara", "Mansour",
			"Hourani", "Bakri", "Rantisi", "Dajani", "Asfour", "Mughrabi",
			"Zaatari",
		},
	},
	regionCentralAsia: {
		MaleFirst: []string{
			"Muhammad", "Ahmad", "Abdul", "Rashid", "Karim", "Farid", "Nasir",
			"Hamid", "Jamil", "Habib", "Akbar", "Ismail", "Umar", "Yusuf",
			"Sher", "Noor", "Jawad", "Zaki", "Daud", "Mirwais",
			"Firdaws", "Rustam", "Jamshed", "Behruz", "Khurshed",
			"Dilshod", "Anvar", "Murod", "Sherzod", "Bakhtiar",
		},
		FemaleFirst: []string{
			"Fatima", "Maryam", "Zainab", "Nasiba", "Dilraba", "Shirin",
			"Gulnara", "Mahbuba", "Zarrina", "Sitora", "Parvina", "Malika",
			"Zuhra", "Jamila", "Halima", "Anisa", "Rahima", "Latifa",
			"Munira", "Nazira", "Farzona", "Madina", "Nigina", "Sadokat",
			"Tahmina", "Barno", "Mohira", "Shahnoza", "Zulfiya", "Nodira",
		},
		Last: []string{
			"Rahimi", "Karimi", "Ahmadzai", "Noori", "Sultani", "Wardak",
			"Ghani", "Fahimi", "Samimi", "Qadiri", "Hasani", "Amiri",
			"Mohammadi", "Hosseini", "Nazari", "Sharifi", "Jafari", "Rezayi",
			"Akbari", "Tahiri", "Rasulov", "Mirzoev", "Karimov", "Rahmonov",
			"Sharipov", "Kholov", "Saidov", "Nematov", "Tursunov", "Boboev",
		},
	},
	regionFallback: {
		MaleFirst: []string{
			"Omar", "Ibrahim", "Yusuf", "Hamza", "Adam", "Zakariya", "Idris",
			"Sulaiman", "Bilal", "Ismail", "Musa", "Nuh", "Dawud", "Haroon",
			"Ayyub", "Mikail", "Khalid", "Mustafa", "Tariq", "Rashid",
			"Zakaria", "Ilyas", "Yahya", "Luqman", "Salahuddin", "Abdur-Rahman",
			"Uthman", "Saifullah", "Jamal", "Kareem",
		},
		FemaleFirst: []string{
			"Fatima", "Maryam", "Aisha", "Khadija", "Sarah", "Amina", "Zahra",
			"Safiya", "Huda", "Layla", "Nadia", "Salma", "Yasmin", "Halima",
			"Samira", "Nour", "Rabia", "Sumaya", "Jamilah", "Zainab",
			"Ruqayyah", "Asiya", "Hajar", "Lubna", "Naima", "Sakina",
			"Wardah", "Tasneem", "Bilqis", "Sawda",
		},
		Last: []string{
			"Ali", "Hassan", "Ibrahim", "Khan", "Ahmed", "Omar", "Muhammad",
			"Yusuf", "Rahman", "Karim", "Mustafa", "Hamid", "Rashid", "Khalid",
			"Malik", "Noor", "Siddiq", "Amin", "Sharif", "Hasan",
			"Abdullah", "Saleh", "Hussain", "Ismail", "Bakr", "Bilal",
			"Dawoud", "Haroun", "Idris", "Sulaiman",
		},
	},
}

// nationalityRegion maps every nationality the sampler can emit to a name
// pool. Lookups fall back to regionFallback, so the mapping is total even
// for nationalities added to the weight table later.
var nationalityRegion = map[string]string{
	"Saudi Arabia":   regionSaudi,
	"Egypt":          regionEgypt,
	"Pakistan":       regionPakistan,
	"India":          regionIndiaMuslim,
	"Bangladesh":     regionBangladesh,
	"Indonesia":      regionIndonesia,
	"Malaysia":       regionMalaysia,
	"Turkey":         regionTurkey,
	"Iran":           regionIran,
	"Nigeria":        regionWestAfrica,
	"Senegal":        regionWestAfrica,
	"Mali":           regionWestAfrica,
	"Niger":          regionWestAfrica,
	"Ghana":          regionWestAfrica,
	"Guinea":         regionWestAfrica,
	"Cameroon":       regionWestAfrica,
	"Ivory Coast":    regionWestAfrica,
	"Tanzania":       regionWestAfrica,
	"Kenya":          regionWestAfrica,
	"Ethiopia":       regionWestAfrica,
	"Algeria":        regionNorthAfrica,
	"Morocco":        regionNorthAfrica,
	"Tunisia":        regionNorthAfrica,
	"Libya":          regionNorthAfrica,
	"Sudan":          regionSudanHorn,
	"Somalia":        regionSudanHorn,
	"Iraq":           regionLevant,
	"Yemen":          regionLevant,
	"Jordan":         regionLevant,
	"Syria":          regionLevant,
	"Afghanistan":    regionCentralAsia,
	"Uzbekistan":     regionCentralAsia,
	"Tajikistan":     regionCentralAsia,
	"Philippines":    regionIndonesia, // SE Asian Muslims share similar naming
	"Thailand":       regionIndonesia,
	"Sri Lanka":      regionIndiaMuslim, // South Asian naming
	"Myanmar":        regionIndiaMuslim,
	"China":          regionFallback, // Hui Muslims using transliterated names
	"United Kingdom": regionFallback,
	"France":         regionFallback,
	"USA":            regionFallback,
	"Germany":        regionFallback,
	"Russia":         regionFallback,
	"Bosnia":         regionFallback,
}

// regionFor resolves a nationality to a name pool key. Total: unmapped
// nationalities use the fallback pool.
func regionFor(nationality string) string {
	if region, ok := nationalityRegion[nationality]; ok {
		return region
	}
	return regionFallback
}
