package seeding

import "github.com/LavaJover/shvark-storefront-service/internal/templates"

type sampleProduct struct {
	name, nameAr               string
	description, descriptionAr string
	price, comparePrice        float64
	stock                      int
	featured                   bool
}

type sampleCategory struct {
	slug, name, nameAr string
	products           []sampleProduct
}

var samplesByCategory = map[string][]sampleCategory{
	templates.CategoryFashion: {
		{slug: "women", name: "Women", nameAr: "نساء", products: []sampleProduct{
			{name: "Linen Abaya", nameAr: "عباية كتان", description: "Lightweight everyday abaya", descriptionAr: "عباية خفيفة للاستخدام اليومي", price: 349, comparePrice: 420, stock: 12, featured: true},
			{name: "Silk Scarf", nameAr: "وشاح حرير", description: "Printed silk scarf", descriptionAr: "وشاح حرير مطبوع", price: 129, stock: 30},
		}},
		{slug: "accessories", name: "Accessories", nameAr: "إكسسوارات", products: []sampleProduct{
			{name: "Leather Handbag", nameAr: "حقيبة جلدية", description: "Genuine leather handbag", descriptionAr: "حقيبة من الجلد الطبيعي", price: 559, stock: 8, featured: true},
		}},
	},
	templates.CategoryElectronics: {
		{slug: "phones", name: "Phones", nameAr: "جوالات", products: []sampleProduct{
			{name: "Smartphone X", nameAr: "هاتف ذكي إكس", description: "6.5 inch display, 128GB", descriptionAr: "شاشة 6.5 إنش وسعة 128 جيجابايت", price: 1899, comparePrice: 2099, stock: 10, featured: true},
			{name: "Fast Charger", nameAr: "شاحن سريع", description: "65W USB-C charger", descriptionAr: "شاحن USB-C بقدرة 65 واط", price: 99, stock: 50},
		}},
		{slug: "audio", name: "Audio", nameAr: "صوتيات", products: []sampleProduct{
			{name: "Wireless Earbuds", nameAr: "سماعات لاسلكية", description: "Noise cancelling earbuds", descriptionAr: "سماعات بخاصية عزل الضوضاء", price: 299, stock: 25, featured: true},
		}},
	},
	templates.CategoryFood: {
		{slug: "bakery", name: "Bakery", nameAr: "مخبوزات", products: []sampleProduct{
			{name: "Date Maamoul", nameAr: "معمول بالتمر", description: "Box of 12 pieces", descriptionAr: "علبة 12 حبة", price: 45, stock: 40, featured: true},
			{name: "Sourdough Loaf", nameAr: "خبز العجين المخمر", description: "Baked fresh daily", descriptionAr: "يخبز طازجا يوميا", price: 22, stock: 20},
		}},
		{slug: "beverages", name: "Beverages", nameAr: "مشروبات", products: []sampleProduct{
			{name: "Arabic Coffee", nameAr: "قهوة عربية", description: "250g cardamom blend", descriptionAr: "250 غرام بالهيل", price: 39, stock: 60, featured: true},
		}},
	},
	templates.CategoryBeauty: {
		{slug: "skincare", name: "Skincare", nameAr: "العناية بالبشرة", products: []sampleProduct{
			{name: "Hydrating Serum", nameAr: "سيروم مرطب", description: "Hyaluronic acid serum 30ml", descriptionAr: "سيروم حمض الهيالورونيك 30 مل", price: 119, comparePrice: 149, stock: 35, featured: true},
			{name: "Sunscreen SPF50", nameAr: "واقي شمس", description: "Daily broad spectrum protection", descriptionAr: "حماية يومية واسعة الطيف", price: 79, stock: 45},
		}},
		{slug: "fragrance", name: "Fragrance", nameAr: "عطور", products: []sampleProduct{
			{name: "Oud Perfume", nameAr: "عطر عود", description: "Eau de parfum 100ml", descriptionAr: "ماء عطر 100 مل", price: 399, stock: 15, featured: true},
		}},
	},
	templates.CategoryGeneral: {
		{slug: "featured", name: "Featured", nameAr: "مميز", products: []sampleProduct{
			{name: "Sample Product", nameAr: "منتج تجريبي", description: "Edit or remove this product", descriptionAr: "عدّل هذا المنتج أو احذفه", price: 100, stock: 10, featured: true},
			{name: "Gift Card", nameAr: "بطاقة هدية", description: "Digital gift card", descriptionAr: "بطاقة هدية رقمية", price: 50, stock: 100},
		}},
		{slug: "new", name: "New Arrivals", nameAr: "وصل حديثا", products: []sampleProduct{
			{name: "New Item", nameAr: "منتج جديد", description: "Replace with your latest product", descriptionAr: "استبدله بأحدث منتجاتك", price: 75, stock: 10},
		}},
	},
}

func samplesFor(templateCategory string) []sampleCategory {
	if s, ok := samplesByCategory[templateCategory]; ok {
		return s
	}
	return samplesByCategory[templates.CategoryGeneral]
}
