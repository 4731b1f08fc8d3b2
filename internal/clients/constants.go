package clients

const USER_AGENT = "cross-lingual-sentiment/1.0 (+https://github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service)"
