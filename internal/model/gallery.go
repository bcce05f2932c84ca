package model

// GalleryItem is a captioned campus photo.
type GalleryItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Gallery is the static campus photo set.
var Gallery = []GalleryItem{
	{"Campus Overview", "Beautiful campus with modern infrastructure", "https://images.unsplash.com/photo-1562774053-701939374585?w=800&h=600&fit=crop"},
	{"Computer Lab", "State-of-the-art computer laboratories", "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800&h=600&fit=crop"},
	{"Engineering Workshop", "Well-equipped workshops for practical learning", "https://images.unsplash.com/photo-1581092921461-eab62e97a780?w=800&h=600&fit=crop"},
	{"Library", "Extensive collection of books and digital resources", "https://images.unsplash.com/photo-1521587760476-6c12a4b040da?w=800&h=600&fit=crop"},
	{"Lecture Hall", "Modern classrooms with audio-visual facilities", "https://images.unsplash.com/photo-1577896851231-70ef18881754?w=800&h=600&fit=crop"},
	{"Research Lab", "Advanced research facilities for innovation", "https://images.unsplash.com/photo-1532094349884-543bc11b234d?w=800&h=600&fit=crop"},
	{"Sports Complex", "Indoor and outdoor sports facilities", "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=800&h=600&fit=crop"},
	{"Student Activities", "Various clubs and extracurricular activities", "https://images.unsplash.com/photo-1523240795612-9a054b0db644?w=800&h=600&fit=crop"},
	{"Tech Fest", "Annual technical festival with competitions", "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&h=600&fit=crop"},
}
