package service

import "github.com/formflow-uk/formflow-backend/internal/app/model"

// sicCatalog is the subset of the UK SIC 2007 condensed list offered
// during registration, in official code order.
var sicCatalog = []model.SICCode{
	{Code: "01110", Description: "Growing of cereals (except rice), leguminous crops and oil seeds"},
	{Code: "01130", Description: "Growing of vegetables and melons, roots and tubers"},
	{Code: "01410", Description: "Raising of dairy cattle"},
	{Code: "01470", Description: "Raising of poultry"},
	{Code: "03110", Description: "Marine fishing"},
	{Code: "08110", Description: "Quarrying of ornamental and building stone, limestone, gypsum, chalk and slate"},
	{Code: "10110", Description: "Processing and preserving of meat"},
	{Code: "10710", Description: "Manufacture of bread; manufacture of fresh pastry goods and cakes"},
	{Code: "11010", Description: "Distilling, rectifying and blending of spirits"},
	{Code: "11050", Description: "Manufacture of beer"},
	{Code: "13100", Description: "Preparation and spinning of textile fibres"},
	{Code: "14130", Description: "Manufacture of other outerwear"},
	{Code: "15120", Description: "Manufacture of luggage, handbags and the like, saddlery and harness"},
	{Code: "16230", Description: "Manufacture of other builders' carpentry and joinery"},
	{Code: "18110", Description: "Printing of newspapers"},
	{Code: "18130", Description: "Pre-press and pre-media services"},
	{Code: "20420", Description: "Manufacture of perfumes and toilet preparations"},
	{Code: "21200", Description: "Manufacture of pharmaceutical preparations"},
	{Code: "22220", Description: "Manufacture of plastic packing goods"},
	{Code: "23610", Description: "Manufacture of concrete products for construction purposes"},
	{Code: "25110", Description: "Manufacture of metal structures and parts of structures"},
	{Code: "26200", Description: "Manufacture of computers and peripheral equipment"},
	{Code: "27400", Description: "Manufacture of electric lighting equipment"},
	{Code: "28220", Description: "Manufacture of lifting and handling equipment"},
	{Code: "29100", Description: "Manufacture of motor vehicles"},
	{Code: "31020", Description: "Manufacture of kitchen furniture"},
	{Code: "32120", Description: "Manufacture of jewellery and related articles"},
	{Code: "33120", Description: "Repair of machinery"},
	{Code: "35110", Description: "Production of electricity"},
	{Code: "35300", Description: "Steam and air conditioning supply"},
	{Code: "38110", Description: "Collection of non-hazardous waste"},
	{Code: "41100", Description: "Development of building projects"},
	{Code: "41201", Description: "Construction of commercial buildings"},
	{Code: "41202", Description: "Construction of domestic buildings"},
	{Code: "42110", Description: "Construction of roads and motorways"},
	{Code: "43210", Description: "Electrical installation"},
	{Code: "43220", Description: "Plumbing, heat and air-conditioning installation"},
	{Code: "43390", Description: "Other building completion and finishing"},
	{Code: "45111", Description: "Sale of new cars and light motor vehicles"},
	{Code: "45200", Description: "Maintenance and repair of motor vehicles"},
	{Code: "46190", Description: "Agents involved in the sale of a variety of goods"},
	{Code: "46341", Description: "Wholesale of fruit and vegetable juices, mineral water and soft drinks"},
	{Code: "46420", Description: "Wholesale of clothing and footwear"},
	{Code: "46610", Description: "Wholesale of agricultural machinery, equipment and supplies"},
	{Code: "47110", Description: "Retail sale in non-specialised stores with food, beverages or tobacco predominating"},
	{Code: "47190", Description: "Other retail sale in non-specialised stores"},
	{Code: "47710", Description: "Retail sale of clothing in specialised stores"},
	{Code: "47730", Description: "Dispensing chemist in specialised stores"},
	{Code: "47910", Description: "Retail sale via mail order houses or via Internet"},
	{Code: "47990", Description: "Other retail sale not in stores, stalls or markets"},
	{Code: "49320", Description: "Taxi operation"},
	{Code: "49410", Description: "Freight transport by road"},
	{Code: "52103", Description: "Operation of warehousing and storage facilities for land transport activities"},
	{Code: "53201", Description: "Licensed carriers"},
	{Code: "55100", Description: "Hotels and similar accommodation"},
	{Code: "55209", Description: "Other holiday and other collective accommodation"},
	{Code: "56101", Description: "Licensed restaurants"},
	{Code: "56102", Description: "Unlicensed restaurants and cafes"},
	{Code: "56210", Description: "Event catering activities"},
	{Code: "56302", Description: "Public houses and bars"},
	{Code: "58110", Description: "Book publishing"},
	{Code: "58210", Description: "Publishing of computer games"},
	{Code: "58290", Description: "Other software publishing"},
	{Code: "59111", Description: "Motion picture production activities"},
	{Code: "59200", Description: "Sound recording and music publishing activities"},
	{Code: "60100", Description: "Radio broadcasting"},
	{Code: "61900", Description: "Other telecommunications activities"},
	{Code: "62011", Description: "Ready-made interactive leisure and entertainment software development"},
	{Code: "62012", Description: "Business and domestic software development"},
	{Code: "62020", Description: "Information technology consultancy activities"},
	{Code: "62090", Description: "Other information technology service activities"},
	{Code: "63110", Description: "Data processing, hosting and related activities"},
	{Code: "63120", Description: "Web portals"},
	{Code: "64191", Description: "Banks"},
	{Code: "64209", Description: "Activities of other holding companies n.e.c."},
	{Code: "64303", Description: "Activities of venture and development capital companies"},
	{Code: "64999", Description: "Financial intermediation not elsewhere classified"},
	{Code: "65110", Description: "Life insurance"},
	{Code: "66190", Description: "Activities auxiliary to financial intermediation n.e.c."},
	{Code: "66220", Description: "Activities of insurance agents and brokers"},
	{Code: "68100", Description: "Buying and selling of own real estate"},
	{Code: "68201", Description: "Renting and operating of Housing Association real estate"},
	{Code: "68209", Description: "Other letting and operating of own or leased real estate"},
	{Code: "68310", Description: "Real estate agencies"},
	{Code: "68320", Description: "Management of real estate on a fee or contract basis"},
	{Code: "69101", Description: "Barristers at law"},
	{Code: "69102", Description: "Solicitors"},
	{Code: "69201", Description: "Accounting and auditing activities"},
	{Code: "69202", Description: "Bookkeeping activities"},
	{Code: "69203", Description: "Tax consultancy"},
	{Code: "70210", Description: "Public relations and communications activities"},
	{Code: "70221", Description: "Financial management"},
	{Code: "70229", Description: "Management consultancy activities other than financial management"},
	{Code: "71111", Description: "Architectural activities"},
	{Code: "71121", Description: "Engineering design activities for industrial process and production"},
	{Code: "71200", Description: "Technical testing and analysis"},
	{Code: "72190", Description: "Other research and experimental development on natural sciences and engineering"},
	{Code: "73110", Description: "Advertising agencies"},
	{Code: "73120", Description: "Media representation services"},
	{Code: "73200", Description: "Market research and public opinion polling"},
	{Code: "74100", Description: "specialised design activities"},
	{Code: "74201", Description: "Portrait photographic activities"},
	{Code: "74300", Description: "Translation and interpretation activities"},
	{Code: "74901", Description: "Environmental consulting activities"},
	{Code: "74909", Description: "Other professional, scientific and technical activities n.e.c."},
	{Code: "75000", Description: "Veterinary activities"},
	{Code: "77110", Description: "Renting and leasing of cars and light motor vehicles"},
	{Code: "77320", Description: "Renting and leasing of construction and civil engineering machinery and equipment"},
	{Code: "78109", Description: "Other activities of employment placement agencies"},
	{Code: "78200", Description: "Temporary employment agency activities"},
	{Code: "79110", Description: "Travel agency activities"},
	{Code: "79120", Description: "Tour operator activities"},
	{Code: "80100", Description: "Private security activities"},
	{Code: "81210", Description: "General cleaning of buildings"},
	{Code: "81300", Description: "Landscape service activities"},
	{Code: "82110", Description: "Combined office administrative service activities"},
	{Code: "82990", Description: "Other business support service activities n.e.c."},
	{Code: "85100", Description: "Pre-primary education"},
	{Code: "85590", Description: "Other education n.e.c."},
	{Code: "85600", Description: "Educational support services"},
	{Code: "86210", Description: "General medical practice activities"},
	{Code: "86230", Description: "Dental practice activities"},
	{Code: "86900", Description: "Other human health activities"},
	{Code: "87300", Description: "Residential care activities for the elderly and disabled"},
	{Code: "88910", Description: "Child day-care activities"},
	{Code: "90010", Description: "Performing arts"},
	{Code: "90030", Description: "Artistic creation"},
	{Code: "93110", Description: "Operation of sports facilities"},
	{Code: "93130", Description: "Fitness facilities"},
	{Code: "93290", Description: "Other amusement and recreation activities n.e.c."},
	{Code: "95110", Description: "Repair of computers and peripheral equipment"},
	{Code: "96020", Description: "Hairdressing and other beauty treatment"},
	{Code: "96090", Description: "Other service activities n.e.c."},
}
