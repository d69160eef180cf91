package resources

// rajasthanFolder holds every Rajasthan template in a single flat folder.
const rajasthanFolder = "RTI_Rajasthan_All_Departments_FINAL"

// catalog is the department directory in display order. Items without a
// File are listed on the directory page but have no downloadable template.
//
// File names are kept exactly as they exist on the asset host, including
// their inconsistent casing, double spaces and typos.
var catalog = []catalogSection{
	{
		Jurisdiction: Delhi,
		Category:     "RTI Delhi Police & Security",
		Folder:       "delhi/RTI Delhi Police & Security",
		Items: []catalogItem{
			{Name: "RTI Delhi Police", File: "RTI Template For Delhi Police.pdf"},
			{Name: "RTI Delhi Fire Services Department", File: "RTI Template For Delhi Fire Services Department.pdf"},
			{Name: "RTI Delhi Prisons Department", File: "RTI Template For Delhi Prisoners Department.pdf"},
			{Name: "RTI Delhi Home Department", File: "RTI Template For Delhi Home Department.pdf"},
			{Name: "RTI Delhi Judicial Department", File: "RTI Template For Delhi Judicial Department.pdf"},
			{Name: "RTI Delhi Law, Justice & Legislative Affairs Department", File: "RTI Template For Delhi Law, Justice & Legislative Affairs Department.pdf"},
			{Name: "RTI Delhi Disaster Management Department", File: "RTI Template For  Delhi Disaster Management Department.pdf"},
		},
	},
	{
		Jurisdiction: Delhi,
		Category:     "RTI Delhi Municipal & Housing",
		Folder:       "delhi/RTI Delhi Municipal & Housing",
		Items: []catalogItem{
			{Name: "RTI Delhi Municipal Corporation (MCD)", File: "RTI Template For  Delhi Municipal Corporation (MCD).pdf"},
			{Name: "RTI Delhi Urban Development Department", File: "RTI Template For Delhi Urban Development Department.pdf"},
			{Name: "RTI Delhi Housing & Urban Development Department", File: "RTI Template For  Delhi Housing & Urban Development Department.pdf"},
			{Name: "RTI Delhi Public Works Department (PWD)", File: "RTI Template For Delhi Public Works Department (PWD).pdf"},
			{Name: "RTI Delhi Rural Development Department", File: "RTI Template For Delhi Rural Development Department.pdf"},
		},
	},
	{
		Jurisdiction: Delhi,
		Category:     "RTI Delhi Utilities & Infrastructure",
		Folder:       "delhi/RTI Delhi Utilities & Infrastructure",
		Items: []catalogItem{
			{Name: "RTI Delhi Jal Board (DJB)", File: "RTI Templare For Delhi Jal Board (DJB).pdf"},
			{Name: "RTI Delhi Transco Limited (DTL)", File: "RTI Template For Delhi Transco Limited (DTL).pdf"},
			{Name: "RTI Delhi Power Department", File: "RTI Delhi Power Department.pdf"},
			{Name: "RTI Delhi Water Supply Department", File: "RTI Template For Delhi Water Supply Department.pdf"},
			{Name: "RTI Delhi Ground Water Department", File: "RTI Template for Delhi Ground Water Department.pdf"},
			{Name: "RTI Delhi Irrigation & Flood Control Department", File: "RTI Template for Delhi Irrigation & Flood Control Department.pdf"},
			{Name: "RTI Delhi Renewable Energy Department", File: "RTI Template for Delhi Renewable Energy Department.pdf"},
		},
	},
	{
		Jurisdiction: Delhi,
		Category:     "RTI Delhi Government Services",
		Folder:       "delhi/RTI Delhi Government Services",
		Items: []catalogItem{
			{Name: "RTI Delhi Revenue Department", File: "RTI Template for Delhi Revenue Department.pdf"},
			{Name: "RTI Delhi Education Department", File: "RTI Template for Delhi Education Department.pdf"},
			{Name: "RTI Delhi Health & Family Welfare Department", File: "RTI Template for Delhi Health & Family Welfare.pdf"},
			{Name: "RTI Delhi Transport Department", File: "RTI Template for Delhi Transport Department.pdf"},
			{Name: "RTI Delhi Finance Department", File: "RTI Template for Delhi Finance Department.pdf"},
			{Name: "RTI Delhi Registration & Stamps Department", File: "RTI Template for Delhi Registration & Stamps Department.pdf"},
			{Name: "RTI Delhi Planning Department", File: "RTI Template for Delhi Planning Department.pdf"},
		},
	},
	{
		Jurisdiction: Delhi,
		Category:     "RTI Delhi Social Welfare",
		Folder:       "delhi/RTI Delhi Social Welfare",
		Items: []catalogItem{
			{Name: "RTI Delhi Social Welfare Department", File: "RTI Template for Delhi Social Welfare Department.pdf"},
			{Name: "RTI Delhi Scheduled Castes & Scheduled Tribes Welfare Department", File: "RTI Template for Delhi Scheduled Castes & Scheduled Tribes Welfare Department.pdf"},
			{Name: "RTI Delhi Women & Child Development Department", File: "RTI Template for Delhi Women & Child Development Department.pdf"},
			{Name: "RTI Delhi Backward Classes Welfare Department", File: "RTI Template for Delhi Backward Classes Welfare Department.pdf"},
			{Name: "RTI Delhi Minority Affairs Department", File: "RTI Template for Delhi Minority Affairs Department.pdf"},
			{Name: "RTI Delhi Youth & Sports Department", File: "RTI Template for Delhi Youth & Sports Department.pdf"},
		},
	},
	{
		Jurisdiction: Delhi,
		Category:     "RTI Delhi Commerce & Industry",
		Folder:       "delhi/RTI Delhi Commerce & Industry",
		Items: []catalogItem{
			{Name: "RTI Delhi Labour Department", File: "RTI Template for Delhi Labour Department.pdf"},
			{Name: "RTI Delhi Industries Department", File: "RTI Template for Delhi Industries Department.pdf"},
			{Name: "RTI Delhi Value Added Tax Department", File: "RTI Template for Delhi Value Added Tax Department.pdf"},
			{Name: "RTI Delhi Food, Civil Supplies & Consumer Affairs Department", File: "RTI Template for Delhi Food, Civil Supplies & Consumer Affairs Department.pdf"},
			{Name: "RTI Delhi Consumer Affairs Department", File: "RTI Template for Delhi Consumer Affairs Department.pdf"},
			{Name: "RTI Delhi Cooperation Department", File: "RTI Template for Delhi Cooperation Department.pdf"},
			{Name: "RTI Delhi Agricultural Marketing Department", File: "RTI Template for Delhi Agricultural Marketing Department.pdf"},
		},
	},
	{
		Jurisdiction: Delhi,
		Category:     "RTI Delhi Environment & Resources",
		Folder:       "delhi/RTI Delhi Environment & Resources",
		Items: []catalogItem{
			{Name: "RTI Delhi Environment Department", File: "RTI Template for Delhi Environment Department.pdf"},
			{Name: "RTI Delhi Forest & Wildlife Department", File: "RTI Template for Delhi Forest & Wildlife Department.pdf"},
			{Name: "RTI Delhi Mines & Geology Department", File: "RTI Template for Delhi Mines & Geology Department.pdf"},
			{Name: "RTI Delhi Science & Technology Department", File: "RTI Template for Delhi Science & Technology Department.pdf"},
		},
	},
	{
		Jurisdiction: Delhi,
		Category:     "RTI Delhi Culture & Tourism",
		Folder:       "delhi/RTI Delhi Culture & Tourism",
		Items: []catalogItem{
			{Name: "RTI Delhi Tourism Department", File: "RTI Template for Delhi Tourism Department.pdf"},
			{Name: "RTI Delhi Art, Culture & Languages Department", File: "RTI Template for Delhi Art, Culture & Languages Department.pdf"},
			{Name: "RTI Delhi Archaeology Department", File: "RTI Template for Delhi Archaeology Department.pdf"},
			{Name: "RTI Delhi Handloom & Handicrafts Department", File: "RTI Template for Delhi Handloom & Handicrafts Department.pdf"},
		},
	},
	{
		Jurisdiction: Delhi,
		Category:     "RTI Delhi Information & Technology",
		Folder:       "delhi/RTI Delhi Information & Technology",
		Items: []catalogItem{
			{Name: "RTI Delhi Information & Publicity Department", File: "RTI Template for Delhi Information & Publicity Department.pdf"},
			{Name: "RTI Delhi Information Technology Department", File: "RTI Template for Delhi Information Technology Department.pdf"},
			{Name: "RTI Delhi Telecommunications Department", File: "RTI Template for Delhi Telecommunications Department.pdf"},
			{Name: "RTI Delhi Postal Services Department", File: "RTI Template for Delhi Postal Services Department.pdf"},
		},
	},
	{
		Jurisdiction: Delhi,
		Category:     "RTI Delhi Financial Services",
		Folder:       "delhi/RTI Delhi Financial Services",
		Items: []catalogItem{
			{Name: "RTI Delhi Banking & Financial Services Department", File: "RTI Template for Delhi Banking & Financial Services Department.pdf"},
			{Name: "RTI Delhi Insurance Department", File: "RTI Template for Delhi Insurance Department.pdf"},
			{Name: "RTI Delhi Pension Department", File: "RTI Template for Delhi Pension Department.pdf"},
		},
	},
	{
		Jurisdiction: Telangana,
		Category:     "RTI Telangana Police & Security",
		Folder:       "telangana/RTI Telangana Police & Security",
		Items: []catalogItem{
			{Name: "RTI Telangana Police Department", File: "RTI Template for Telangana Police Department.pdf"},
			{Name: "RTI Telangana Fire Services Department", File: "RTI Template for Telangana Fire Services Department.pdf"},
			{Name: "RTI Telangana Prisons Department", File: "RTI Template for Telangana Prisons Department.pdf"},
			{Name: "RTI Telangana Home Department", File: "RTI Template for Telangana Home Department.pdf"},
			{Name: "RTI Telangana Law Department", File: "RTI Template for Telangana Law Department.pdf"},
			{Name: "RTI Telangana Disaster Management Department", File: "RTI Template for Telangana Disaster Management Department.pdf"},
		},
	},
	{
		Jurisdiction: Telangana,
		Category:     "RTI Telangana Municipal & Housing",
		Folder:       "telangana/RTI Telangana Muncipal & Housing",
		Items: []catalogItem{
			{Name: "RTI Greater Hyderabad Municipal Corporation (GHMC)", File: "RTI Template for Greater Hyderabad Municipal Corporation (GHMC).pdf"},
			{Name: "RTI Telangana Municipal Administration & Urban Development Department", File: "RTI Template for Telangana Municipal Administration & Urban Development Department (MA&UD).pdf"},
			{Name: "RTI Telangana Housing Department", File: "RTI Template for Telangana Housing Department.pdf"},
			{Name: "RTI Telangana Public Works Department (PWD)", File: "RTI Template for Telangana Public Works Department (PWD).pdf"},
			{Name: "RTI Telangana Panchayat Raj & Rural Development Department", File: "RTI Template for Telangana Panchayat Raj & Rural Development Department.pdf"},
			{Name: "RTI Telangana Urban Development Department", File: "RTI Template for Telangana Urban Development Department.pdf"},
		},
	},
	{
		Jurisdiction: Telangana,
		Category:     "RTI Telangana Utilities & Infrastructure",
		Folder:       "telangana/RTI Telangana Utilities & Infrastructure",
		Items: []catalogItem{
			{Name: "RTI Telangana Water Resources Department"},
			{Name: "RTI Telangana Energy Department", File: "RTI Template for Telangana Energy Department.pdf"},
			{Name: "RTI Telangana State Transmission Corporation (TSTRANSCO)", File: "RTI Template for Telangana State Transmission Corporation (TSTRANSCO).pdf"},
			{Name: "RTI Telangana State Power Generation Corporation (TSGENCO)", File: "RTI Template for Telangana State Power Generation Corporation (TSGENCO).pdf"},
			{Name: "RTI Telangana State Southern Power Distribution Company (TSSPDCL)", File: "RTI Template for Telangana State Southern Power Distribution Company (TSSPDCL).pdf"},
			{Name: "RTI Telangana State Northern Power Distribution Company (TSNPDCL)", File: "RTI Template for Telangana State Northern Power Distribution Company (TSNPDCL).pdf"},
			{Name: "RTI Telangana Irrigation & CAD Department", File: "RTI Template for Telangana Irrigation & CAD Department.pdf"},
		},
	},
	{
		Jurisdiction: Telangana,
		Category:     "RTI Telangana Government Services",
		Folder:       "telangana/RTI Telangana Government Services",
		Items: []catalogItem{
			{Name: "RTI Telangana Secretariat", File: "RTI Template for Telangana Secretariat.pdf"},
			{Name: "RTI Telangana Revenue Department", File: "RTI Template for Telangana Revenue Department.pdf"},
			{Name: "RTI Telangana Education Department", File: "RTI Template for Telangana Education Department.pdf"},
			{Name: "RTI Telangana Health & Family Welfare Department", File: "RTI Template for Telangana Health & Family Welfare Department.pdf"},
			{Name: "RTI Telangana Transport Department", File: "RTI Template for Telangana Transport Department.pdf"},
			{Name: "RTI Telangana Finance Department", File: "RTI Template for Telangana Finance Department.pdf"},
			{Name: "RTI Telangana Registration & Stamps Department", File: "RTI Template for Telangana Registration & Stamps Department.pdf"},
			{Name: "RTI Telangana Planning Department", File: "RTI Template for Telangana Planning Department.pdf"},
		},
	},
	{
		Jurisdiction: Telangana,
		Category:     "RTI Telangana Social Welfare",
		Folder:       "telangana/RTI Telanganga Social Welfare",
		Items: []catalogItem{
			{Name: "RTI Telangana Social Welfare Department", File: "RTI Template for Telangana Social Welfare Department.pdf"},
			{Name: "RTI Telangana Scheduled Castes Development Department", File: "RTI Template for Telangana Scheduled Castes Development Department.pdf"},
			{Name: "RTI Telangana Scheduled Tribes Welfare Department", File: "RTI Template for Telangana Scheduled Tribes Welfare Department.pdf"},
			{Name: "RTI Telangana Women & Child Development Department", File: "RTI Template for Telangana Women & Child Development Department.pdf"},
			{Name: "RTI Telangana Backward Classes Welfare Department", File: "RTI Template for Telangana Backward Classes Welfare Department.pdf"},
			{Name: "RTI Telangana Minority Welfare Department", File: "RTI Template for Telangana Minority Welfare Department.pdf"},
			{Name: "RTI Telangana Youth & Sports Department", File: "RTI Template for Telangana Youth & Sports Department.pdf"},
		},
	},
	{
		Jurisdiction: Telangana,
		Category:     "RTI Telangana Commerce & Industry",
		Folder:       "telangana/RTI Telangana Commerce & Industry",
		Items: []catalogItem{
			{Name: "RTI Telangana Labour Department", File: "RTI TEMPLATE FOR TELANGANA LABOUR DEPARTMENT.pdf"},
			{Name: "RTI Telangana Industries & Commerce Department", File: "RTI TEMPLATE FOR TELANGANA INDUSTRIES & COMMERCE DEPARTMENT.pdf"},
			{Name: "RTI Telangana Commercial Taxes Department", File: "RTI TEMPLATE FOR TELANGANA COMMERCIAL TAXES DEPARTMENT.pdf"},
			{Name: "RTI Telangana Food & Civil Supplies Department", File: "RTI TEMPLATE FOR TELANGANA FOOD & CIVIL SUPPLIES DEPARTMENT.pdf"},
			{Name: "RTI Telangana Agriculture & Cooperation Department", File: "RTI TEMPLATE FOR TELANGANA AGRICULTURE & COOPERATION DEPARTMENT.pdf"},
			{Name: "RTI Telangana Handlooms & Textiles Department", File: "RTI TEMPLATE FOR TELANGANA HANDLOOMS & TEXTILES DEPARTMENT.pdf"},
		},
	},
	{
		Jurisdiction: Telangana,
		Category:     "RTI Telangana Environment & Resources",
		Folder:       "telangana/RTI Telangana Environment & Resources",
		Items: []catalogItem{
			{Name: "RTI Telangana Environment Department", File: "RTI TEMPLATE FOR TELANGANA ENVIRONMENT DEPARTMENT.pdf"},
			{Name: "RTI Telangana Forest Department", File: "RTI TEMPLATE FOR TELANGANA FOREST DEPARTMENT.pdf"},
			{Name: "RTI Telangana Mines & Geology Department", File: "RTI TEMPLATE FOR TELANGANA MINES & GEOLOGY DEPARTMENT.pdf"},
			{Name: "RTI Telangana Water Resources Department", File: "RTI TEMPLATE FOR TELANGANA WATER RESOURCES DEPARTMENT.pdf"},
		},
	},
	{
		Jurisdiction: Telangana,
		Category:     "RTI Telangana Culture & Tourism",
		Folder:       "telangana/RTI Telangana Culture & Tourism",
		Items: []catalogItem{
			{Name: "RTI Telangana Tourism & Culture Department", File: "RTI TEMPLATE FOR TELANGANA TOURISM & CULTURE DEPARTMENT.pdf"},
			{Name: "RTI Telangana Information & Public Relations Department", File: "RTI TEMPLATE FOR TELANGANA INFORMATION & PUBLIC RELATIONS DEPARTMENT.pdf"},
			{Name: "RTI Telangana Archaeology Department", File: "RTI TEMPLATE FOR TELANGANA ARCHAEOLOGY DEPARTMENT.pdf"},
			{Name: "RTI Telangana Endowments Department", File: "RTI TEMPLATE FOR TELANGANA ENDOWMENTS DEPARTMENT.pdf"},
		},
	},
	{
		Jurisdiction: Telangana,
		Category:     "RTI Telangana Information & Technology",
		Folder:       "telangana/RTI Telangana Information & Technology",
		Items: []catalogItem{
			{Name: "RTI Telangana Information Technology Department", File: "RTI TEMPLATE FOR TELANGANA INFORMATION TECHNOLOGY DEPARTMENT.pdf"},
			{Name: "RTI Telangana State Technology Services (TSTS)", File: "RTI TEMPLATE FOR TELANGANA STATE TECHNOLOGY SERVICES (TSTS).pdf"},
			{Name: "RTI Telangana State FibreNet Limited", File: "RTI TEMPLATE FOR TELANGANA STATE FIBRENET LIMITED.pdf"},
			{Name: "RTI Telangana State Innovation Cell", File: "RTI TEMPLATE FOR TELANGANA STATE INNOVATION CELL.pdf"},
		},
	},
	{
		Jurisdiction: Telangana,
		Category:     "RTI Telangana Education & Health",
		Folder:       "telangana/RTI Telangana Education & Health",
		Items: []catalogItem{
			{Name: "RTI Telangana School Education Department", File: "RTI TEMPLATE FOR TELANGANA SCHOOL EDUCATION DEPARTMENT.pdf"},
			{Name: "RTI Telangana Higher Education Department", File: "RTI TEMPLATE FOR TELANGANA HIGHER EDUCATION DEPARTMENT.pdf"},
			{Name: "RTI Telangana Technical Education Department", File: "RTI TEMPLATE FOR TELANGANA TECHNICAL EDUCATION DEPARTMENT.pdf"},
			{Name: "RTI Telangana Medical & Health Department", File: "RTI TEMPLATE FOR TELANGANA MEDICAL & HEALTH DEPARTMENT.pdf"},
			{Name: "RTI Telangana State Medical Services & Infrastructure Development Corporation (TSMSIDC)", File: "RTI TEMPLATE FOR TELANGANA STATE MEDICAL SERVICES & INFRASTRUCTURE DEVELOPMENT CORPORATION (TSMSIDC).pdf"},
		},
	},
	{
		Jurisdiction: Rajasthan,
		Category:     "RTI Rajasthan Police & Home Affairs",
		Folder:       rajasthanFolder,
		Items: []catalogItem{
			{Name: "RTI Rajasthan Home Department", File: "RTI_Rajasthan_Home_Department.pdf"},
			{Name: "RTI Rajasthan Police Department", File: "RTI_Rajasthan_Police_Department.pdf"},
			{Name: "RTI Rajasthan Anti-Corruption Bureau (ACB)", File: "RTI_Rajasthan_Anti-Corruption_Bureau.pdf"},
			{Name: "RTI Rajasthan Prisons Department", File: "RTI_Rajasthan_Prisons_Department.pdf"},
			{Name: "RTI Rajasthan Prosecution Department", File: "RTI_Rajasthan_Prosecution_Department.pdf"},
			{Name: "RTI Rajasthan Disaster Management & Relief Department", File: "RTI_Rajasthan_Disaster_Management_&_Relief_Department.pdf"},
		},
	},
	{
		Jurisdiction: Rajasthan,
		Category:     "RTI Rajasthan Finance, Tax & Revenue",
		Folder:       rajasthanFolder,
		Items: []catalogItem{
			{Name: "RTI Rajasthan Finance Department", File: "RTI_Rajasthan_Finance_Department.pdf"},
			{Name: "RTI Rajasthan Revenue Department", File: "RTI_Rajasthan_Revenue_Department.pdf"},
			{Name: "RTI Rajasthan Commercial Taxes (GST) Department", File: "RTI_Rajasthan_Commercial_Taxes_(GST)_Department.pdf"},
			{Name: "RTI Rajasthan Registration & Stamps Department", File: "RTI_Rajasthan_Registration_&_Stamps_Department.pdf"},
			{Name: "RTI Rajasthan Treasuries & Accounts Department", File: "RTI_Rajasthan_Treasuries_&_Accounts_Department.pdf"},
			{Name: "RTI Rajasthan Excise Department", File: "RTI_Rajasthan_Excise_Department.pdf"},
		},
	},
	{
		Jurisdiction: Rajasthan,
		Category:     "RTI Rajasthan Transport & Public Infrastructure",
		Folder:       rajasthanFolder,
		Items: []catalogItem{
			{Name: "RTI Rajasthan Transport Department", File: "RTI_Rajasthan_Transport_Department.pdf"},
			{Name: "RTI Rajasthan Public Works Department (PWD)", File: "RTI_Rajasthan_Public_Works_Department.pdf"},
			{Name: "RTI Rajasthan Urban Development Department", File: "RTI_Rajasthan_Urban_Development_Department.pdf"},
			{Name: "RTI Rajasthan Local Self Government Department", File: "RTI_Rajasthan_Local_Self_Government_Department.pdf"},
			{Name: "RTI Rajasthan Jaipur Development Authority (JDA)", File: "RTI_Rajasthan_Jaipur_Development_Authority.pdf"},
			{Name: "RTI Rajasthan Rajasthan State Road Development Corporation", File: "RTI_Rajasthan_Rajasthan_State_Road_Development_Corporation.pdf"},
		},
	},
	{
		Jurisdiction: Rajasthan,
		Category:     "RTI Rajasthan Education, Skill & Health",
		Folder:       rajasthanFolder,
		Items: []catalogItem{
			{Name: "RTI Rajasthan School Education Department", File: "RTI_Rajasthan_School_Education_Department.pdf"},
			{Name: "RTI Rajasthan Higher Education Department", File: "RTI_Rajasthan_Higher_Education_Department.pdf"},
			{Name: "RTI Rajasthan Technical Education Department", File: "RTI_Rajasthan_Technical_Education_Department.pdf"},
			{Name: "RTI Rajasthan Medical & Health Department", File: "RTI_Rajasthan_Medical_&_Health_Department.pdf"},
			{Name: "RTI Rajasthan Medical Education Department", File: "RTI_Rajasthan_Medical_Education_Department.pdf"},
			{Name: "RTI Rajasthan Skill, Employment & Entrepreneurship Department", File: "RTI_Rajasthan_Skill,_Employment_&_Entrepreneurship_Department.pdf"},
		},
	},
	{
		Jurisdiction: Rajasthan,
		Category:     "RTI Rajasthan Agriculture, Animal & Rural Development",
		Folder:       rajasthanFolder,
		Items: []catalogItem{
			{Name: "RTI Rajasthan Agriculture Department", File: "RTI_Rajasthan_Agriculture_Department.pdf"},
			{Name: "RTI Rajasthan Horticulture Department", File: "RTI_Rajasthan_Horticulture_Department.pdf"},
			{Name: "RTI Rajasthan Animal Husbandry Department", File: "RTI_Rajasthan_Animal_Husbandry_Department.pdf"},
			{Name: "RTI Rajasthan Rural Development Department", File: "RTI_Rajasthan_Rural_Development_Department.pdf"},
			{Name: "RTI Rajasthan Panchayati Raj Department", File: "RTI_Rajasthan_Panchayati_Raj_Department.pdf"},
			{Name: "RTI Rajasthan Watershed Development Department", File: "RTI_Rajasthan_Watershed_Development_Department.pdf"},
		},
	},
	{
		Jurisdiction: Rajasthan,
		Category:     "RTI Rajasthan Social Justice & Welfare",
		Folder:       rajasthanFolder,
		Items: []catalogItem{
			{Name: "RTI Rajasthan Social Justice & Empowerment Department", File: "RTI_Rajasthan_Social_Justice_&_Empowerment_Department.pdf"},
			{Name: "RTI Rajasthan Women & Child Development Department", File: "RTI_Rajasthan_Women_&_Child_Development_Department.pdf"},
			{Name: "RTI Rajasthan Minority Affairs Department", File: "RTI_Rajasthan_Minority_Affairs_Department.pdf"},
			{Name: "RTI Rajasthan Labour Department", File: "RTI_Rajasthan_Labour_Department.pdf"},
			{Name: "RTI Rajasthan Empowerment of Persons with Disabilities Department", File: "RTI_Rajasthan_Empowerment_of_Persons_with_Disabilities_Department.pdf"},
		},
	},
	{
		Jurisdiction: Rajasthan,
		Category:     "RTI Rajasthan Industries, Mines & MSME",
		Folder:       rajasthanFolder,
		Items: []catalogItem{
			{Name: "RTI Rajasthan Industries Department", File: "RTI_Rajasthan_Industries_Department.pdf"},
			{Name: "RTI Rajasthan MSME & Export Promotion Department", File: "RTI_Rajasthan_MSME_&_Export_Promotion_Department.pdf"},
			{Name: "RTI Rajasthan Mines & Geology Department", File: "RTI_Rajasthan_Mines_&_Geology_Department.pdf"},
			{Name: "RTI Rajasthan RIICO (Industrial Development)", File: "RTI_Rajasthan_RIICO.pdf"},
			{Name: "RTI Rajasthan Handloom & Handicrafts Department", File: "RTI_Rajasthan_Handloom_&_Handicrafts_Department.pdf"},
		},
	},
	{
		Jurisdiction: Rajasthan,
		Category:     "RTI Rajasthan Environment, Water & Energy",
		Folder:       rajasthanFolder,
		Items: []catalogItem{
			{Name: "RTI Rajasthan Forest Department", File: "RTI_Rajasthan_Forest_Department.pdf"},
			{Name: "RTI Rajasthan Environment Department", File: "RTI_Rajasthan_Environment_Department.pdf"},
			{Name: "RTI Rajasthan Water Resources Department", File: "RTI_Rajasthan_Water_Resources_Department.pdf"},
			{Name: "RTI Rajasthan Public Health Engineering Department (PHED)", File: "RTI_Rajasthan_Public_Health_Engineering_Department.pdf"},
			{Name: "RTI Rajasthan Renewable Energy Corporation (RRECL)", File: "RTI_Rajasthan_Rajasthan_Renewable_Energy_Corporation.pdf"},
		},
	},
	{
		Jurisdiction: Rajasthan,
		Category:     "RTI Rajasthan Information, IT & Public Relations",
		Folder:       rajasthanFolder,
		Items: []catalogItem{
			{Name: "RTI Rajasthan Information Technology & Communication Department", File: "RTI_Rajasthan_Information_Technology_&_Communication_Department.pdf"},
			{Name: "RTI Rajasthan DoIT&C", File: "RTI_Rajasthan_DoIT&C.pdf"},
			{Name: "RTI Rajasthan e-Governance Services", File: "RTI_Rajasthan_e-Governance_Services.pdf"},
			{Name: "RTI Rajasthan Information & Public Relations Department", File: "RTI_Rajasthan_Information_&_Public_Relations_Department.pdf"},
		},
	},
	{
		Jurisdiction: Rajasthan,
		Category:     "RTI Rajasthan Culture, Tourism & Religious Affairs",
		Folder:       rajasthanFolder,
		Items: []catalogItem{
			{Name: "RTI Rajasthan Tourism Department", File: "RTI_Rajasthan_Tourism_Department.pdf"},
			{Name: "RTI Rajasthan Art, Culture & Archaeology Department", File: "RTI_Rajasthan_Art,_Culture_&_Archaeology_Department.pdf"},
			{Name: "RTI Rajasthan Devasthan (Temple) Department", File: "RTI_Rajasthan_Devasthan_Department.pdf"},
			{Name: "RTI Rajasthan Archives Department", File: "RTI_Rajasthan_Archives_Department.pdf"},
		},
	},
}
