package shared

import "danube_tours/internal/domain"

// SeedSettings is the initial singleton settings row.
var SeedSettings = domain.SiteSettings{
	HeroImage: "https://images.unsplash.com/photo-1610415539473-6f5a34586953?q=80&w=2070",
}

// SeedTours is the initial catalogue pushed by cmd/seeder. Price tiers
// are authored in display order; the first covering tier wins.
var SeedTours = []domain.Tour{
	{
		Title: domain.LocalizedText{
			domain.LocaleEN: "Novi Sad City Tour",
			domain.LocaleSR: "Obilazak Novog Sada",
		},
		Subtitle: domain.LocalizedText{
			domain.LocaleEN: "The Athens of Serbia in half a day",
			domain.LocaleSR: "Srpska Atina za pola dana",
		},
		ShortDescription: domain.LocalizedText{
			domain.LocaleEN: "Petrovaradin fortress, the old town and the Danube quay.",
			domain.LocaleSR: "Petrovaradinska tvrđava, stari grad i kej.",
		},
		LongDescription: domain.LocalizedText{
			domain.LocaleEN: "A guided walk and drive through Novi Sad: the Petrovaradin fortress with its famous clock tower, Zmaj Jovina and Dunavska streets, the Bishop's palace and the Danube park, ending with a panoramic drive along the quay.",
			domain.LocaleSR: "Vođena šetnja i vožnja kroz Novi Sad: Petrovaradinska tvrđava sa čuvenim satom, Zmaj Jovina i Dunavska ulica, Vladičanski dvor i Dunavski park, uz panoramsku vožnju kejom.",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1601823984263-b87b59798b70?q=80&w=1974",
			"https://images.unsplash.com/photo-1573056019137-d8dda0b1d46f?q=80&w=2070",
		},
		Included: domain.LocalizedList{
			domain.LocaleEN: {"Hotel pickup", "Professional guide", "Fortress entrance"},
			domain.LocaleSR: {"Prevoz od hotela", "Profesionalni vodič", "Ulaznica za tvrđavu"},
		},
		Duration:  domain.LocalizedText{domain.LocaleEN: "4-5 hours", domain.LocaleSR: "4-5 sati"},
		MaxPeople: 6,
		PriceVariations: []domain.PriceVariation{
			{Persons: "1-2", Price: 60},
			{Persons: "3-4", Price: 45},
			{Persons: "5-6", Price: 35},
		},
		IsAvailable: true,
		IsFeatured:  true,
		SEO: domain.TourSEO{
			MetaTitle: domain.LocalizedText{
				domain.LocaleEN: "Novi Sad City Tour | Danube Tours",
			},
			MetaDescription: domain.LocalizedText{
				domain.LocaleEN: "Private guided tour of Novi Sad and the Petrovaradin fortress.",
			},
		},
	},
	{
		Title: domain.LocalizedText{
			domain.LocaleEN: "Belgrade Day Trip",
			domain.LocaleSR: "Izlet u Beograd",
		},
		Subtitle: domain.LocalizedText{
			domain.LocaleEN: "The white city, from Kalemegdan to Skadarlija",
			domain.LocaleSR: "Beli grad, od Kalemegdana do Skadarlije",
		},
		ShortDescription: domain.LocalizedText{
			domain.LocaleEN: "A full-day private trip to the capital.",
			domain.LocaleSR: "Celodnevni privatni izlet u prestonicu.",
		},
		LongDescription: domain.LocalizedText{
			domain.LocaleEN: "Kalemegdan fortress, the Saint Sava temple, Knez Mihailova street and the bohemian quarter of Skadarlija, with time for lunch on the Sava riverbank.",
			domain.LocaleSR: "Kalemegdan, Hram Svetog Save, Knez Mihailova i boemska Skadarlija, sa pauzom za ručak na obali Save.",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1563447147-95e3b0fa6a43?q=80&w=2070",
		},
		Included: domain.LocalizedList{
			domain.LocaleEN: {"Transport", "Professional guide"},
			domain.LocaleSR: {"Prevoz", "Profesionalni vodič"},
		},
		Duration:  domain.LocalizedText{domain.LocaleEN: "8 hours", domain.LocaleSR: "8 sati"},
		MaxPeople: 8,
		PriceVariations: []domain.PriceVariation{
			{Persons: "1-2", Price: 90},
			{Persons: "3-5", Price: 70},
			{Persons: "6-8", Price: 55},
		},
		IsAvailable: true,
		IsFeatured:  true,
		SEO: domain.TourSEO{
			MetaTitle: domain.LocalizedText{
				domain.LocaleEN: "Belgrade Day Trip | Danube Tours",
			},
			MetaDescription: domain.LocalizedText{
				domain.LocaleEN: "Private full-day trip from Novi Sad to Belgrade.",
			},
		},
	},
	{
		Title: domain.LocalizedText{
			domain.LocaleEN: "Fruska Gora Wine Tour",
			domain.LocaleSR: "Vinska tura Fruškom gorom",
		},
		Subtitle: domain.LocalizedText{
			domain.LocaleEN: "Monasteries and family wineries",
			domain.LocaleSR: "Manastiri i porodične vinarije",
		},
		ShortDescription: domain.LocalizedText{
			domain.LocaleEN: "Wine tasting at two wineries and a monastery visit.",
			domain.LocaleSR: "Degustacija u dve vinarije i obilazak manastira.",
		},
		LongDescription: domain.LocalizedText{
			domain.LocaleEN: "A relaxed afternoon on the slopes of Fruska Gora: a visit to Krusedol monastery, then tastings of bermet and local varieties at two family-run wineries in Sremski Karlovci and Irig.",
			domain.LocaleSR: "Opušteno popodne na obroncima Fruške gore: obilazak manastira Krušedol, zatim degustacija bermeta i lokalnih sorti u dve porodične vinarije u Sremskim Karlovcima i Irigu.",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1506377247377-2a5b3b417ebb?q=80&w=2070",
		},
		Included: domain.LocalizedList{
			domain.LocaleEN: {"Transport", "Wine tastings", "Monastery entrance"},
			domain.LocaleSR: {"Prevoz", "Degustacije vina", "Ulaz u manastir"},
		},
		Duration:  domain.LocalizedText{domain.LocaleEN: "5-6 hours", domain.LocaleSR: "5-6 sati"},
		MaxPeople: 6,
		PriceVariations: []domain.PriceVariation{
			{Persons: "1-2", Price: 80},
			{Persons: "3-4", Price: 60},
			{Persons: "5-6", Price: 50},
		},
		IsAvailable: true,
		IsFeatured:  false,
		SEO: domain.TourSEO{
			MetaTitle: domain.LocalizedText{
				domain.LocaleEN: "Fruska Gora Wine Tour | Danube Tours",
			},
			MetaDescription: domain.LocalizedText{
				domain.LocaleEN: "Wine tasting tour through Fruska Gora with monastery visits.",
			},
		},
	},
}
