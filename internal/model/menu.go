package model

// MenuItem is a dashboard tile.
type MenuItem struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Short     string `json:"short"`
	Color     string `json:"color"`
	Screen    string `json:"screen,omitempty"`
	Available bool   `json:"available"`
}

// DefaultMenu mirrors the home screen. Only entries with a screen are usable.
var DefaultMenu = []MenuItem{
	{ID: 1, Title: "Realisasi Produksi", Short: "PROD", Color: "#1A237E", Screen: "RealisasiProduksi", Available: true},
	{ID: 2, Title: "Stok Opname", Short: "SO", Color: "#1A237E", Screen: "KoreksiStokView", Available: true},
	{ID: 3, Title: "Daftar Stok", Short: "STOK", Color: "#1A237E"},
	{ID: 4, Title: "Barang Masuk", Short: "IN", Color: "#1A237E"},
	{ID: 5, Title: "Barang Keluar", Short: "OUT", Color: "#1A237E"},
	{ID: 6, Title: "Lokasi Gudang", Short: "LOC", Color: "#1A237E"},
	{ID: 7, Title: "Notifikasi", Short: "MSG", Color: "#1A237E"},
	{ID: 8, Title: "Laporan", Short: "REP", Color: "#1A237E"},
	{ID: 9, Title: "S.O.S", Short: "SOS", Color: "#B71C1C"},
}
